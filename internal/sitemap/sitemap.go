package sitemap

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/storely/storefront-service/internal/category"
	"github.com/storely/storefront-service/internal/product"
	"github.com/storely/storefront-service/internal/product/dto"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Builder assembles sitemap.xml from the static pages, every active
// product, and every category currently present in the catalog.
type Builder struct {
	products   product.UseCase
	categories category.UseCase
	baseURL    string
}

func NewBuilder(products product.UseCase, categories category.UseCase, baseURL string) *Builder {
	return &Builder{
		products:   products,
		categories: categories,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (b *Builder) Build(ctx context.Context) ([]byte, error) {
	set := urlSet{Xmlns: xmlns}
	today := time.Now().Format("2006-01-02")

	statics := []struct {
		path, freq, priority string
	}{
		{"", "daily", "1.0"},
		{"/products", "daily", "0.9"},
		{"/categories", "weekly", "0.8"},
		{"/about", "monthly", "0.7"},
	}
	for _, s := range statics {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        b.baseURL + s.path,
			LastMod:    today,
			ChangeFreq: s.freq,
			Priority:   s.priority,
		})
	}

	// Both sources fail open, so a store outage yields a sitemap with just
	// the static pages.
	products, _ := b.products.ListProducts(ctx, &dto.ProductFilters{})
	for _, p := range products {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        b.baseURL + "/products/" + p.ID,
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	names, _ := b.categories.ListDistinctCategories(ctx)
	for _, name := range names {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        b.baseURL + "/categories/" + Slug(name),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Slug lowercases a category name and collapses whitespace runs to dashes.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
