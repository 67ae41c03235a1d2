package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/kvstore"
)

// Stores bundles the stores sharing one session.
type Stores struct {
	Session  *SessionStore
	Cart     *CartStore
	Wishlist *WishlistStore
	Checkout *Checkout
}

// NewStores builds the session, restores it and attaches the dependent
// stores. Errors from loading the restored identity's partitions are
// returned alongside usable stores.
func NewStores(ctx context.Context, store kvstore.Store, opts ...Option) (*Stores, error) {
	session, err := NewSessionStore(store, opts...)
	if err != nil {
		return nil, err
	}
	if err := session.Restore(ctx); err != nil {
		return nil, err
	}

	cart, cartErr := NewCartStore(ctx, session, store, opts...)
	wishlist, wishErr := NewWishlistStore(ctx, session, store, opts...)

	return &Stores{
		Session:  session,
		Cart:     cart,
		Wishlist: wishlist,
		Checkout: NewCheckout(session, cart, opts...),
	}, errors.Join(cartErr, wishErr)
}
