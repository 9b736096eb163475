package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/storely/storefront-service/internal/model"
	"github.com/storely/storefront-service/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	conditions := []string{"is_active = TRUE"}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.Category != "" && f.Category != dto.CategoryAll {
		conditions = append(conditions, "category = :category")
		args["category"] = f.Category
	}

	// Secondary id key keeps equal-sort-key rows in a stable order.
	orderBy := "created_at DESC"
	switch f.Sort {
	case dto.SortPriceAsc:
		orderBy = "price ASC"
	case dto.SortPriceDesc:
		orderBy = "price DESC"
	case dto.SortNameAsc:
		orderBy = "name ASC"
	case dto.SortNameDesc:
		orderBy = "name DESC"
	}

	query := fmt.Sprintf(
		"SELECT * FROM products WHERE %s ORDER BY %s, id ASC",
		strings.Join(conditions, " AND "), orderBy,
	)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "prepare product list")
	}
	defer nstmt.Close()

	var products []model.Product
	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (r *PGRepository) FindActiveByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 AND is_active = TRUE LIMIT 1`
	if err := r.DB.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get active product")
	}
	return &p, nil
}

func (r *PGRepository) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error) {
	var products []model.Product
	query := `
        SELECT * FROM products
        WHERE is_active = TRUE AND category = $1 AND id != $2
        ORDER BY created_at DESC, id ASC
        LIMIT $3
    `
	if err := r.DB.SelectContext(ctx, &products, query, category, excludeID, limit); err != nil {
		return nil, errors.Wrap(err, "list related products")
	}
	return products, nil
}

func (r *PGRepository) FindAllAdmin(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products ORDER BY created_at DESC, id ASC`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, errors.Wrap(err, "list all products")
	}
	return products, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	if err := r.DB.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (r *PGRepository) CountStats(ctx context.Context) (*dto.CatalogStats, error) {
	var stats dto.CatalogStats
	query := `
        SELECT count(*) AS total,
               count(*) FILTER (WHERE is_active) AS active,
               count(*) FILTER (WHERE is_active AND stock_quantity = 0) AS out_of_stock
        FROM products
    `
	if err := r.DB.GetContext(ctx, &stats, query); err != nil {
		return nil, errors.Wrap(err, "count products")
	}
	return &stats, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, description, price, image_url, category,
            stock_quantity, is_active, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :price, :image_url, :category,
            :stock_quantity, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return errors.Wrap(err, "insert product")
}

func (r *PGRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	assignments := make([]string, 0, len(keys))
	args := map[string]interface{}{"id": id}
	for _, k := range keys {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", k, k))
		args[k] = fields[k]
	}

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = :id", strings.Join(assignments, ", "))
	_, err := r.DB.NamedExecContext(ctx, query, args)
	return errors.Wrap(err, "update product")
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return errors.Wrap(err, "delete product")
}
