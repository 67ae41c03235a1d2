package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/models"
)

// AddOutcome tells the caller whether AddItem merged into an existing line
// and the quantity that line now has.
type AddOutcome struct {
	Merged   bool
	Quantity int
}

// CartStore holds the active identity's cart. The partition it reads and
// writes follows the session through OnIdentityChange.
type CartStore struct {
	mu    sync.Mutex
	store kvstore.Store
	owner string
	items []models.CartLine
	opts  options
}

// NewCartStore subscribes a cart to session and loads the cart of the
// identity that is active now, if any. A load error is returned together
// with the usable (empty) store.
func NewCartStore(ctx context.Context, session *SessionStore, store kvstore.Store, opts ...Option) (*CartStore, error) {
	if session == nil || store == nil {
		panic("services: NewCartStore requires a session and a store")
	}
	c := &CartStore{store: store, opts: buildOptions(opts)}
	if err := session.Subscribe(ctx, c.OnIdentityChange); err != nil {
		return c, err
	}
	return c, nil
}

// OnIdentityChange switches the cart to identity's partition. A nil
// identity empties the in-memory cart without touching storage.
func (c *CartStore) OnIdentityChange(ctx context.Context, identity *models.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	if identity == nil {
		c.owner = ""
		return nil
	}
	c.owner = identity.ID

	key := CartKey(identity.ID)
	lines, outcome, err := kvstore.LoadJSON(ctx, c.store, key, validCart)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if outcome == kvstore.Invalid {
		c.opts.logger.Warn(ctx, "ignoring malformed cart", "key", key)
		return nil
	}
	c.items = lines
	return nil
}

// AddItem merges line into the line with the same (id, size), or appends
// it when there is none.
func (c *CartStore) AddItem(ctx context.Context, line models.CartLine) (AddOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustOwner()

	if !line.Valid() {
		return AddOutcome{}, common.ErrInvalidLine
	}

	prev := cloneLines(c.items)
	var out AddOutcome
	if i := c.index(line.ID, line.Size); i >= 0 {
		c.items[i].Quantity += line.Quantity
		out = AddOutcome{Merged: true, Quantity: c.items[i].Quantity}
	} else {
		c.items = append(c.items, cloneLine(line))
		out = AddOutcome{Quantity: line.Quantity}
	}

	if err := c.persist(ctx, prev); err != nil {
		return AddOutcome{}, err
	}

	if out.Merged {
		c.opts.notifier.Notify("Cart updated", fmt.Sprintf("%s quantity increased to %d", line.Name, out.Quantity), false)
	} else {
		c.opts.notifier.Notify("Item added to cart", fmt.Sprintf("%s added to your cart", line.Name), false)
	}
	return out, nil
}

// RemoveItem drops the line keyed by (id, size). Removing a line that is
// not there does nothing.
func (c *CartStore) RemoveItem(ctx context.Context, id, size string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustOwner()

	i := c.index(id, size)
	if i < 0 {
		return nil
	}

	prev := cloneLines(c.items)
	removed := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)

	if err := c.persist(ctx, prev); err != nil {
		return err
	}
	c.opts.notifier.Notify("Item removed", fmt.Sprintf("%s removed from your cart", removed.Name), false)
	return nil
}

// UpdateQuantity sets the quantity of the line keyed by (id, size).
// Quantities below 1 are rejected with common.ErrInvalidQuantity; an
// unknown line is ignored.
func (c *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int, size string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustOwner()

	if quantity < 1 {
		return common.ErrInvalidQuantity
	}
	i := c.index(id, size)
	if i < 0 || c.items[i].Quantity == quantity {
		return nil
	}

	prev := cloneLines(c.items)
	c.items[i].Quantity = quantity
	return c.persist(ctx, prev)
}

// ClearCart empties the cart and stores the empty sequence.
func (c *CartStore) ClearCart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustOwner()

	prev := cloneLines(c.items)
	c.items = nil
	if err := c.persist(ctx, prev); err != nil {
		return err
	}
	c.opts.notifier.Notify("Cart cleared", "All items have been removed from your cart", false)
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *CartStore) Items() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneLines(c.items)
}

func (c *CartStore) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.items {
		n += l.Quantity
	}
	return n
}

func (c *CartStore) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.items {
		total += l.Subtotal()
	}
	return total
}

// Owner is the identity id whose partition is loaded, or "".
func (c *CartStore) Owner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner
}

func (c *CartStore) mustOwner() {
	if c.owner == "" {
		panic(common.ErrNoActiveIdentity)
	}
}

func (c *CartStore) index(id, size string) int {
	key := models.LineKey{ID: id, Size: size}
	for i, l := range c.items {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

// persist writes the cart through; on failure the in-memory lines are put
// back to prev.
func (c *CartStore) persist(ctx context.Context, prev []models.CartLine) error {
	lines := c.items
	if lines == nil {
		lines = []models.CartLine{}
	}
	key := CartKey(c.owner)
	if err := kvstore.SaveJSON(ctx, c.store, key, lines); err != nil {
		c.items = prev
		c.opts.logger.Error(ctx, "cart write failed", "key", key, "error", err)
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// validCart accepts a stored cart only if every line is valid and no two
// lines share a key.
func validCart(lines []models.CartLine) bool {
	seen := make(map[models.LineKey]struct{}, len(lines))
	for _, l := range lines {
		if !l.Valid() {
			return false
		}
		if _, dup := seen[l.Key()]; dup {
			return false
		}
		seen[l.Key()] = struct{}{}
	}
	return true
}

func cloneLine(l models.CartLine) models.CartLine {
	if l.OriginalPrice != nil {
		p := *l.OriginalPrice
		l.OriginalPrice = &p
	}
	return l
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	if lines == nil {
		return nil
	}
	out := make([]models.CartLine, len(lines))
	for i, l := range lines {
		out[i] = cloneLine(l)
	}
	return out
}
