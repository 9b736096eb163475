package dto

// CreateProductInput carries the admin create form. Price and StockQuantity
// arrive as raw JSON values (number or string) and are coerced by the
// usecase; non-numeric input is rejected there.
type CreateProductInput struct {
	Name          string  `json:"name" validate:"max=200"`
	Description   *string `json:"description"`
	Price         any     `json:"price"`
	ImageURL      *string `json:"image_url"`
	Category      *string `json:"category"`
	StockQuantity any     `json:"stock_quantity"`
}

// UpdateFields is a partial admin update payload. Keys outside the
// allow-list are ignored; a present null value is applied as NULL.
type UpdateFields map[string]any
