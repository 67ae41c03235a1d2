// Package kvstore is the durable, synchronous, string-keyed persistence
// layer behind the session and cart stores.
//
// Every backend honors the same contract: Get returns (nil, nil) for a
// missing key, Delete is idempotent, and Update applies all writes staged
// by its callback atomically or none of them.
package kvstore

import "context"

// Reader reads raw values.
type Reader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Writer writes raw values.
type Writer interface {
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is a durable key-value store.
type Store interface {
	Reader
	Writer

	// Update runs fn and applies the writes it makes through w as a single
	// atomic unit. If fn returns an error nothing is applied.
	Update(ctx context.Context, fn func(ctx context.Context, w Writer) error) error

	Close() error
}
