// Package services holds the storefront's stateful core: the session store
// (current identity and the mock account collection), the cart store, the
// wishlist store and checkout. Stores are constructed once and shared by
// reference; every mutation is written through to a kvstore.Store before
// the call returns.
//
// Persisted layout:
//
//	user                 current identity, no credential
//	users                account collection
//	cart-{identityId}    cart lines of one identity
//	wishlist-{identityId} saved products of one identity
package services
