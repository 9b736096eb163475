package model

// Product is a row in the products table. Category is a free-form string,
// not a foreign key; nullable columns map to pointer fields.
type Product struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	Description   *string `db:"description" json:"description"`
	Price         float64 `db:"price" json:"price"`
	ImageURL      *string `db:"image_url" json:"image_url"`
	Category      *string `db:"category" json:"category"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	IsActive      bool    `db:"is_active" json:"is_active"`
}
