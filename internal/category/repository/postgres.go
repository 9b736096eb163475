package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ActiveCategoryValues(ctx context.Context) ([]string, error) {
	var values []string
	query := `SELECT category FROM products WHERE is_active = TRUE AND category IS NOT NULL`
	if err := r.DB.SelectContext(ctx, &values, query); err != nil {
		return nil, errors.Wrap(err, "list category values")
	}
	return values, nil
}
