package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("too many attempts")
	// ErrRejected wraps requests the server refused as invalid, such as an
	// unknown product or a missing size.
	ErrRejected = errors.New("request rejected")
)
