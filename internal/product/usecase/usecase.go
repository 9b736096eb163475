package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product"
	"github.com/storely/storefront-service/internal/product/dto"
)

// defaultRelatedLimit matches the storefront detail page, which shows up
// to four related products.
const defaultRelatedLimit = 4

// updatableColumns is the allow-list for partial updates. Any other key in
// the payload is silently ignored.
var updatableColumns = []string{
	"name", "description", "price", "image_url", "category",
	"stock_quantity", "is_active",
}

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

// ListProducts applies the catalog filter contract. Store failures degrade
// to an empty shelf instead of an error page.
func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		uc.logger.Error("failed to list products", zap.Error(err))
		return []model.Product{}, nil
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindActiveByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to get product", zap.String("id", id), zap.Error(err))
		return nil, product.ErrNotFound
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) GetRelatedProducts(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error) {
	if category == "" {
		return []model.Product{}, nil
	}
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	products, err := uc.repo.FindRelated(ctx, category, excludeID, limit)
	if err != nil {
		uc.logger.Error("failed to list related products", zap.String("category", category), zap.Error(err))
		return []model.Product{}, nil
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (uc *productUseCase) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.FindAllAdmin(ctx)
	if err != nil {
		uc.logger.Error("failed to list products for admin", zap.Error(err))
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (uc *productUseCase) CatalogStats(ctx context.Context) (*dto.CatalogStats, error) {
	stats, err := uc.repo.CountStats(ctx)
	if err != nil {
		uc.logger.Error("failed to count catalog stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price == nil || input.StockQuantity == nil {
		return nil, product.NewValidationError("name, price and stock quantity are required")
	}

	price, err := coerceFloat(input.Price)
	if err != nil {
		return nil, product.NewValidationError("price must be a number")
	}
	stock, err := coerceInt(input.StockQuantity)
	if err != nil {
		return nil, product.NewValidationError("stock quantity must be a number")
	}
	if price == 0 || stock == 0 {
		return nil, product.NewValidationError("name, price and stock quantity are required")
	}
	if price < 0 {
		return nil, product.NewValidationError("price must be non-negative")
	}
	if stock < 0 {
		return nil, product.NewValidationError("stock quantity must be non-negative")
	}

	id := uuid.New().String()
	now := time.Now()

	p := &model.Product{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:          name,
		Description:   normalizeOptional(input.Description),
		Price:         price,
		ImageURL:      normalizeOptional(input.ImageURL),
		Category:      normalizeOptional(input.Category),
		StockQuantity: stock,
		IsActive:      true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, fields dto.UpdateFields) (*model.Product, error) {
	updates := map[string]any{}

	for _, col := range updatableColumns {
		value, present := fields[col]
		if !present {
			continue
		}
		switch col {
		case "price":
			price, err := coerceFloat(value)
			if err != nil {
				return nil, product.NewValidationError("price must be a number")
			}
			if price < 0 {
				return nil, product.NewValidationError("price must be non-negative")
			}
			updates[col] = price
		case "stock_quantity":
			stock, err := coerceInt(value)
			if err != nil {
				return nil, product.NewValidationError("stock quantity must be a number")
			}
			if stock < 0 {
				return nil, product.NewValidationError("stock quantity must be non-negative")
			}
			updates[col] = stock
		case "is_active":
			active, err := cast.ToBoolE(value)
			if err != nil {
				return nil, product.NewValidationError("is_active must be a boolean")
			}
			updates[col] = active
		default:
			// Text columns: an explicit null clears the value.
			if value == nil {
				updates[col] = nil
				continue
			}
			s, err := cast.ToStringE(value)
			if err != nil {
				return nil, product.NewValidationError(col + " must be a string")
			}
			updates[col] = s
		}
	}

	if len(updates) == 0 {
		return nil, product.NewValidationError("no valid fields provided for update")
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to load product for update", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, product.ErrNotFound
	}

	updates["updated_at"] = time.Now()

	if err := uc.repo.UpdateFields(ctx, id, updates); err != nil {
		uc.logger.Error("failed to update product", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to reload product after update", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, product.ErrNotFound
	}
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete product", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

var errNilNumber = errors.New("value is null")

// coerceFloat accepts JSON numbers and numeric strings. Everything else,
// including null, is an error.
func coerceFloat(value any) (float64, error) {
	if value == nil {
		return 0, errNilNumber
	}
	return cast.ToFloat64E(value)
}

// coerceInt truncates fractional input the way the admin form always has.
func coerceInt(value any) (int, error) {
	f, err := coerceFloat(value)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// normalizeOptional maps absent and empty-string form values to NULL.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
