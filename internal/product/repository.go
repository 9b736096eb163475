package product

import (
	"context"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product/dto"
)

type Repository interface {
	// Storefront reads: always restricted to is_active = true.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	FindActiveByID(ctx context.Context, id string) (*model.Product, error)
	FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error)

	// Admin reads: include inactive rows.
	FindAllAdmin(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	CountStats(ctx context.Context) (*dto.CatalogStats, error)

	Create(ctx context.Context, p *model.Product) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
