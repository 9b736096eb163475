// Package producttest provides an in-memory stand-in for the products
// table, mirroring the filter and ordering semantics of the Postgres
// repository so usecases and handlers can be tested without a database.
package producttest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product/dto"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	products map[string]model.Product

	// Err, when set, is returned by every method to simulate a store
	// outage.
	Err error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{products: map[string]model.Product{}}
}

func (r *InMemoryRepository) Seed(products ...model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.products[p.ID] = p
	}
}

func (r *InMemoryRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []model.Product
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		if f.Category != "" && f.Category != dto.CategoryAll {
			if p.Category == nil || *p.Category != f.Category {
				continue
			}
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out, nil
}

func (r *InMemoryRepository) FindActiveByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	return &p, nil
}

func (r *InMemoryRepository) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []model.Product
	for _, p := range r.products {
		if !p.IsActive || p.ID == excludeID {
			continue
		}
		if p.Category == nil || *p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, dto.SortNewest)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) FindAllAdmin(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sortProducts(out, dto.SortNewest)
	return out, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *InMemoryRepository) CountStats(ctx context.Context) (*dto.CatalogStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	stats := &dto.CatalogStats{}
	for _, p := range r.products {
		stats.Total++
		if p.IsActive {
			stats.Active++
			if p.StockQuantity == 0 {
				stats.OutOfStock++
			}
		}
	}
	return stats, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.products[p.ID] = *p
	return nil
}

func (r *InMemoryRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name, _ = v.(string)
		case "description":
			p.Description = optionalString(v)
		case "price":
			p.Price, _ = v.(float64)
		case "image_url":
			p.ImageURL = optionalString(v)
		case "category":
			p.Category = optionalString(v)
		case "stock_quantity":
			p.StockQuantity, _ = v.(int)
		case "is_active":
			p.IsActive, _ = v.(bool)
		case "updated_at":
			if t, ok := v.(time.Time); ok {
				p.UpdatedAt = t
			}
		}
	}
	r.products[id] = p
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.products, id)
	return nil
}

// ActiveCategoryValues also satisfies the category repository interface.
func (r *InMemoryRepository) ActiveCategoryValues(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var values []string
	for _, p := range r.products {
		if p.IsActive && p.Category != nil {
			values = append(values, *p.Category)
		}
	}
	sort.Strings(values)
	return values, nil
}

func matchesSearch(p model.Product, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

func optionalString(v any) *string {
	if v == nil {
		return nil
	}
	s, _ := v.(string)
	return &s
}

func sortProducts(products []model.Product, key string) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case dto.SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case dto.SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case dto.SortNameAsc:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case dto.SortNameDesc:
			if a.Name != b.Name {
				return a.Name > b.Name
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
}
