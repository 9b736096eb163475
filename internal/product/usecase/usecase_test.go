package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product"
	"github.com/storely/storefront-service/internal/product/dto"
	"github.com/storely/storefront-service/internal/product/producttest"
)

func strPtr(s string) *string { return &s }

func seedProduct(id, name, description, category string, price float64, stock int, active bool, createdAt time.Time) model.Product {
	p := model.Product{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: createdAt, UpdatedAt: createdAt},
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		IsActive:      active,
	}
	if description != "" {
		p.Description = strPtr(description)
	}
	if category != "" {
		p.Category = strPtr(category)
	}
	return p
}

func newTestUseCase(t *testing.T) (product.UseCase, *producttest.InMemoryRepository) {
	t.Helper()
	repo := producttest.NewInMemoryRepository()
	return NewProductUseCase(repo, zap.NewNop()), repo
}

func seedCatalog(repo *producttest.InMemoryRepository) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.Seed(
		seedProduct("p1", "Wireless Earbuds", "Compact earbuds with high-fidelity sound", "Electronics", 89.99, 30, true, base),
		seedProduct("p2", "Yoga Mat", "Eco-friendly non-slip yoga mat", "Sports", 39.99, 50, true, base.Add(time.Hour)),
		seedProduct("p3", "Stainless Steel Water Bottle", "Keeps drinks cold for 24 hours", "Sports", 24.99, 80, true, base.Add(2*time.Hour)),
		seedProduct("p4", "Retired Doormat", "Old floor mat", "Sports", 9.99, 0, false, base.Add(3*time.Hour)),
	)
}

func TestListProductsExcludesInactive(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)

	products, err := uc.ListProducts(context.Background(), &dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsActive)
		assert.NotEqual(t, "p4", p.ID)
	}
}

func TestListProductsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)

	products, err := uc.ListProducts(context.Background(), &dto.ProductFilters{Search: "mat"})
	require.NoError(t, err)
	// "Yoga Mat" matches by name; the inactive doormat stays hidden even
	// though it matches.
	require.Len(t, products, 1)
	assert.Equal(t, "Yoga Mat", products[0].Name)

	products, err = uc.ListProducts(context.Background(), &dto.ProductFilters{Search: "COLD"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Stainless Steel Water Bottle", products[0].Name)
}

func TestListProductsCategoryIsCaseSensitiveExact(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	products, err := uc.ListProducts(ctx, &dto.ProductFilters{Category: "Sports"})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = uc.ListProducts(ctx, &dto.ProductFilters{Category: "sports"})
	require.NoError(t, err)
	assert.Empty(t, products)

	// The sentinel disables the filter.
	products, err = uc.ListProducts(ctx, &dto.ProductFilters{Category: dto.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestListProductsSorting(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	products, err := uc.ListProducts(ctx, &dto.ProductFilters{Sort: dto.SortPriceAsc})
	require.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Price, products[i].Price)
	}

	products, err = uc.ListProducts(ctx, &dto.ProductFilters{Sort: dto.SortPriceDesc})
	require.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Price, products[i].Price)
	}

	products, err = uc.ListProducts(ctx, &dto.ProductFilters{Sort: dto.SortNameAsc})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Stainless Steel Water Bottle", products[0].Name)

	// Default and unknown sorts are newest-first.
	products, err = uc.ListProducts(ctx, &dto.ProductFilters{Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "p3", products[0].ID)
}

func TestListProductsFailsOpenOnStoreError(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	repo.Err = errors.New("connection refused")

	products, err := uc.ListProducts(context.Background(), &dto.ProductFilters{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestGetProduct(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	p, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds", p.Name)

	_, err = uc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, product.ErrNotFound)

	// Inactive products are invisible on the detail path.
	_, err = uc.GetProduct(ctx, "p4")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestGetRelatedProducts(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	related, err := uc.GetRelatedProducts(ctx, "Sports", "p2", 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "p3", related[0].ID)

	related, err = uc.GetRelatedProducts(ctx, "", "p2", 4)
	require.NoError(t, err)
	assert.Empty(t, related)

	related, err = uc.GetRelatedProducts(ctx, "Sports", "other", 1)
	require.NoError(t, err)
	assert.Len(t, related, 1)
}

func TestCreateProductCoercesNumericStrings(t *testing.T) {
	uc, _ := newTestUseCase(t)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:          "X",
		Price:         "9.99",
		StockQuantity: "5",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 9.99, p.Price)
	assert.Equal(t, 5, p.StockQuantity)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Category)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProductValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input dto.CreateProductInput
	}{
		{"empty name", dto.CreateProductInput{Name: "", Price: 10.0, StockQuantity: 1}},
		{"whitespace name", dto.CreateProductInput{Name: "   ", Price: 10.0, StockQuantity: 1}},
		{"missing price", dto.CreateProductInput{Name: "X", StockQuantity: 1}},
		{"missing stock", dto.CreateProductInput{Name: "X", Price: 10.0}},
		{"zero price", dto.CreateProductInput{Name: "X", Price: 0.0, StockQuantity: 1}},
		{"non-numeric price", dto.CreateProductInput{Name: "X", Price: "free", StockQuantity: 1}},
		{"non-numeric stock", dto.CreateProductInput{Name: "X", Price: 10.0, StockQuantity: "lots"}},
		{"negative price", dto.CreateProductInput{Name: "X", Price: -1.0, StockQuantity: 1}},
		{"negative stock", dto.CreateProductInput{Name: "X", Price: 10.0, StockQuantity: -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(ctx, &tc.input)
			assert.True(t, product.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateProductSurfacesStoreError(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.Err = errors.New("insert failed")

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:          "X",
		Price:         1.0,
		StockQuantity: 1,
	})
	require.Error(t, err)
	assert.False(t, product.IsValidationError(err))
}

func TestUpdateProductPartial(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	before, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, "p1", dto.UpdateFields{"price": "19.99"})
	require.NoError(t, err)
	assert.Equal(t, 19.99, updated.Price)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.StockQuantity, updated.StockQuantity)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateProductEmptySetRejected(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	_, err := uc.UpdateProduct(ctx, "p1", dto.UpdateFields{})
	assert.True(t, product.IsValidationError(err))

	// Keys outside the allow-list are ignored, leaving an empty set.
	_, err = uc.UpdateProduct(ctx, "p1", dto.UpdateFields{"id": "p9", "sku": "abc"})
	assert.True(t, product.IsValidationError(err))
}

func TestUpdateProductNullClearsOptionalField(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)

	updated, err := uc.UpdateProduct(context.Background(), "p1", dto.UpdateFields{"description": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestUpdateProductDeactivationHidesFromStorefront(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	_, err := uc.UpdateProduct(ctx, "p1", dto.UpdateFields{"is_active": false})
	require.NoError(t, err)

	_, err = uc.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, product.ErrNotFound)

	// Still visible to the admin listing.
	all, err := uc.ListAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateProductValidation(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	_, err := uc.UpdateProduct(ctx, "p1", dto.UpdateFields{"price": "expensive"})
	assert.True(t, product.IsValidationError(err))

	_, err = uc.UpdateProduct(ctx, "p1", dto.UpdateFields{"stock_quantity": -1.0})
	assert.True(t, product.IsValidationError(err))

	_, err = uc.UpdateProduct(ctx, "missing", dto.UpdateFields{"price": 5.0})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	ctx := context.Background()

	require.NoError(t, uc.DeleteProduct(ctx, "p1"))

	_, err := uc.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestAdminReadsFailClosed(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedCatalog(repo)
	repo.Err = errors.New("connection refused")
	ctx := context.Background()

	_, err := uc.ListAllProducts(ctx)
	assert.Error(t, err)

	_, err = uc.CatalogStats(ctx)
	assert.Error(t, err)
}

func TestCatalogStats(t *testing.T) {
	uc, repo := newTestUseCase(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.Seed(
		seedProduct("p1", "A", "", "Electronics", 1, 0, true, base),
		seedProduct("p2", "B", "", "Electronics", 2, 5, true, base),
		seedProduct("p3", "C", "", "", 3, 0, false, base),
	)

	stats, err := uc.CatalogStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.OutOfStock)
}
