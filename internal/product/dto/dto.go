package dto

// CategoryAll is the sentinel category value that disables the category
// filter ("All Categories" in the storefront UI).
const CategoryAll = "all"

// Sort keys accepted by the catalog listing. Anything else falls back to
// SortNewest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

type ProductFilters struct {
	Search   string
	Category string
	Sort     string
}

type CatalogStats struct {
	Total      int `db:"total" json:"total"`
	Active     int `db:"active" json:"active"`
	OutOfStock int `db:"out_of_stock" json:"out_of_stock"`
}
