package models

// LineKey is the uniqueness key of a cart line. A line without a size and
// a line with a size are distinct even when they share a product id.
type LineKey struct {
	ID   string
	Size string
}

// CartLine is one product/size/quantity entry in a cart.
type CartLine struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Quantity      int      `json:"quantity"`
	Category      string   `json:"category"`
	Size          string   `json:"size,omitempty"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ID: l.ID, Size: l.Size}
}

// Subtotal is price × quantity for the line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Valid reports whether the line may be stored in a cart.
func (l CartLine) Valid() bool {
	return l.ID != "" && l.Quantity >= 1 && l.Price >= 0
}

// WishlistItem is a saved product reference in an identity's wishlist.
type WishlistItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
}
