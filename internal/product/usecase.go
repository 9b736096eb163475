package product

import (
	"context"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product/dto"
)

type UseCase interface {
	// Storefront reads. These never propagate store errors: a failed read
	// degrades to an empty result (or ErrNotFound for single fetches).
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetRelatedProducts(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error)

	// Admin operations. Store errors surface to the caller.
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	CatalogStats(ctx context.Context) (*dto.CatalogStats, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, fields dto.UpdateFields) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
