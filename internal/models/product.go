package models

import "math"

// Product is a read-only catalog entry.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	IsOnSale      bool     `json:"isOnSale"`
	Sizes         []string `json:"sizes,omitempty"`
}

// CartLine builds a cart line for the product.
func (p Product) CartLine(quantity int, size string) CartLine {
	return CartLine{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Quantity:      quantity,
		Category:      p.Category,
		Size:          size,
	}
}

// WishlistItem builds a wishlist entry for the product.
func (p Product) WishlistItem() WishlistItem {
	return WishlistItem{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
	}
}

// HasSize reports whether size is one of the product's sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// DiscountPercent returns the rounded markdown from the original price,
// or 0 when the product has no original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	op := *p.OriginalPrice
	return int(math.Round((op - p.Price) / op * 100))
}
