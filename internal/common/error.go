// Package common defines sentinel errors and constants shared by the
// storefront layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Cart errors.
	ErrNoActiveIdentity = errors.New("no active identity")
	ErrInvalidLine      = errors.New("invalid cart line")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrEmptyCart        = errors.New("cart is empty")

	// Session errors.
	ErrUnknownPasswordScheme = errors.New("unknown password scheme")

	// Storage errors.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
