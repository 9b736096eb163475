package category

import "context"

// Repository reads the category column of the products table. There is no
// category registry; everything is derived from live product rows.
type Repository interface {
	// ActiveCategoryValues returns the category value of every active
	// product that has one, duplicates included, for in-process counting.
	ActiveCategoryValues(ctx context.Context) ([]string, error)
}
