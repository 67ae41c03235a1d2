// Package catalog is the read-only product catalog the cart and wishlist
// build their lines from.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/models"
)

// CategoryAll selects every category.
const CategoryAll = "all"

// Sort orders for Search.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// DealThreshold is the minimum markdown for a Christmas deal.
const DealThreshold = 0.2

type Catalog struct {
	products []models.Product
	featured []models.Product
}

func New(products, featured []models.Product) *Catalog {
	return &Catalog{
		products: slices.Clone(products),
		featured: slices.Clone(featured),
	}
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultFeatured)
}

func (c *Catalog) All() []models.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Featured() []models.Product {
	return slices.Clone(c.featured)
}

// ByID looks in the main list first, then in the featured list.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, list := range [][]models.Product{c.products, c.featured} {
		if i := slices.IndexFunc(list, func(p models.Product) bool { return p.ID == id }); i >= 0 {
			return list[i], true
		}
	}
	return models.Product{}, false
}

// ByCategory matches case-insensitively; CategoryAll returns everything.
func (c *Catalog) ByCategory(category string) []models.Product {
	if category == CategoryAll {
		return c.All()
	}
	return c.filter(func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

// ByIDs returns the main-list products whose id is in ids, in catalog order.
func (c *Catalog) ByIDs(ids []string) []models.Product {
	return c.filter(func(p models.Product) bool { return slices.Contains(ids, p.ID) })
}

func (c *Catalog) OnSale() []models.Product {
	return c.filter(func(p models.Product) bool { return p.IsOnSale })
}

// ChristmasDeals are sale products marked down by at least DealThreshold.
func (c *Catalog) ChristmasDeals() []models.Product {
	return c.filter(func(p models.Product) bool {
		if !p.IsOnSale || p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
			return false
		}
		return (*p.OriginalPrice-p.Price) / *p.OriginalPrice >= DealThreshold
	})
}

// Categories lists distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	var out []string
	for _, p := range c.products {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

// Query filters and orders Search results. Empty Category means all.
type Query struct {
	Text     string
	Category string
	Sort     string
}

// Search returns products whose name or description contains Text
// (case-insensitive) in the requested category, stably sorted.
func (c *Catalog) Search(q Query) []models.Product {
	text := strings.ToLower(q.Text)
	results := c.filter(func(p models.Product) bool {
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), text) ||
			strings.Contains(strings.ToLower(p.Description), text)
	})

	switch q.Sort {
	case SortPriceLow:
		slices.SortStableFunc(results, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(results, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRating:
		slices.SortStableFunc(results, func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return results
}

func (c *Catalog) filter(keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
