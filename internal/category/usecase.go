package category

import (
	"context"

	"github.com/storely/storefront-service/internal/category/dto"
)

type UseCase interface {
	// ListCategories returns per-category counts ordered by descending
	// count (ties by name), enriched with browse-page metadata.
	ListCategories(ctx context.Context) ([]dto.CategoryWithCount, error)
	// ListDistinctCategories returns the sorted distinct category names,
	// as used by the filter dropdown and the sitemap.
	ListDistinctCategories(ctx context.Context) ([]string, error)
}
