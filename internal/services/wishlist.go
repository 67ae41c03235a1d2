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

// WishlistStore keeps the saved products of the active identity, one
// partition per identity, unique by product id.
type WishlistStore struct {
	mu    sync.Mutex
	store kvstore.Store
	owner string
	items []models.WishlistItem
	opts  options
}

func NewWishlistStore(ctx context.Context, session *SessionStore, store kvstore.Store, opts ...Option) (*WishlistStore, error) {
	if session == nil || store == nil {
		panic("services: NewWishlistStore requires a session and a store")
	}
	w := &WishlistStore{store: store, opts: buildOptions(opts)}
	if err := session.Subscribe(ctx, w.OnIdentityChange); err != nil {
		return w, err
	}
	return w, nil
}

func (w *WishlistStore) OnIdentityChange(ctx context.Context, identity *models.Identity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	if identity == nil {
		w.owner = ""
		return nil
	}
	w.owner = identity.ID

	key := WishlistKey(identity.ID)
	items, outcome, err := kvstore.LoadJSON(ctx, w.store, key, validWishlist)
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}
	if outcome == kvstore.Invalid {
		w.opts.logger.Warn(ctx, "ignoring malformed wishlist", "key", key)
		return nil
	}
	w.items = items
	return nil
}

// Toggle saves p, or removes it when it is already saved. It reports
// whether p is saved afterwards.
func (w *WishlistStore) Toggle(ctx context.Context, p models.Product) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.owner == "" {
		panic(common.ErrNoActiveIdentity)
	}

	prev := slices.Clone(w.items)
	i := slices.IndexFunc(w.items, func(it models.WishlistItem) bool { return it.ID == p.ID })
	added := i < 0
	if added {
		w.items = append(w.items, p.WishlistItem())
	} else {
		w.items = slices.Delete(w.items, i, i+1)
	}

	items := w.items
	if items == nil {
		items = []models.WishlistItem{}
	}
	key := WishlistKey(w.owner)
	if err := kvstore.SaveJSON(ctx, w.store, key, items); err != nil {
		w.items = prev
		return !added, fmt.Errorf("save wishlist: %w", err)
	}

	if added {
		w.opts.notifier.Notify("Added to wishlist", fmt.Sprintf("%s added to your wishlist", p.Name), false)
	} else {
		w.opts.notifier.Notify("Removed from wishlist", fmt.Sprintf("%s removed from your wishlist", p.Name), false)
	}
	return added, nil
}

func (w *WishlistStore) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.ContainsFunc(w.items, func(it models.WishlistItem) bool { return it.ID == productID })
}

func (w *WishlistStore) Items() []models.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.items)
}

func validWishlist(items []models.WishlistItem) bool {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ID == "" {
			return false
		}
		if _, dup := seen[it.ID]; dup {
			return false
		}
		seen[it.ID] = struct{}{}
	}
	return true
}
