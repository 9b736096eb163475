package category

import "net/url"

// Static browse-page metadata keyed by the category names the admin form
// suggests. Stored category values are free-form, so anything outside this
// table falls back to the generic entry.
type Metadata struct {
	Description string
	ImageURL    string
}

var knownCategories = map[string]Metadata{
	"Electronics": {
		Description: "Latest gadgets, computers, smartphones, and electronic accessories",
		ImageURL:    "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=600&h=400&fit=crop&crop=center",
	},
	"Furniture": {
		Description: "Modern and comfortable furniture for your home and office",
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=600&h=400&fit=crop&crop=center",
	},
	"Clothing": {
		Description: "Trendy fashion and apparel for all styles and occasions",
		ImageURL:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=600&h=400&fit=crop&crop=center",
	},
	"Food & Beverage": {
		Description: "Premium food products, beverages, and gourmet items",
		ImageURL:    "https://images.unsplash.com/photo-1506976785307-8732e854ad03?w=600&h=400&fit=crop&crop=center",
	},
	"Books": {
		Description: "Wide selection of books across all genres and topics",
		ImageURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=600&h=400&fit=crop&crop=center",
	},
	"Sports": {
		Description: "Sports equipment, fitness gear, and athletic accessories",
		ImageURL:    "https://images.unsplash.com/photo-1571019613914-85e0c1ee7e7e?w=600&h=400&fit=crop&crop=center",
	},
}

const fallbackDescription = "Explore our amazing products in this category"

// MetadataFor returns the static metadata for a category name, or the
// generic fallback for names outside the suggestion list.
func MetadataFor(name string) Metadata {
	if meta, ok := knownCategories[name]; ok {
		return meta
	}
	return Metadata{
		Description: fallbackDescription,
		ImageURL:    "https://via.placeholder.com/600x400?text=" + url.QueryEscape(name),
	}
}
