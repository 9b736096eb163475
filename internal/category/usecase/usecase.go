package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/category"
	"github.com/storely/storefront-service/internal/category/dto"
)

type categoryUseCase struct {
	repo   category.Repository
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

// ListCategories counts active products per category in-process; the store
// is only asked for the raw category column (no aggregation pushdown).
// Reads fail open to an empty list.
func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryWithCount, error) {
	values, err := uc.repo.ActiveCategoryValues(ctx)
	if err != nil {
		uc.logger.Error("failed to list category values", zap.Error(err))
		return []dto.CategoryWithCount{}, nil
	}

	counts := map[string]int{}
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	categories := make([]dto.CategoryWithCount, 0, len(counts))
	for name, count := range counts {
		meta := category.MetadataFor(name)
		categories = append(categories, dto.CategoryWithCount{
			Category:    name,
			Count:       count,
			Description: meta.Description,
			ImageURL:    meta.ImageURL,
		})
	}

	// Descending count; name breaks ties so the order is reproducible.
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})

	return categories, nil
}

func (uc *categoryUseCase) ListDistinctCategories(ctx context.Context) ([]string, error) {
	values, err := uc.repo.ActiveCategoryValues(ctx)
	if err != nil {
		uc.logger.Error("failed to list category values", zap.Error(err))
		return []string{}, nil
	}

	seen := map[string]bool{}
	names := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		names = append(names, v)
	}
	sort.Strings(names)

	return names, nil
}
