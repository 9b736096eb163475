package dto

// CategoryWithCount is one entry on the category browse page: the raw
// category string from the products table, how many active products carry
// it, and static presentation metadata.
type CategoryWithCount struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
