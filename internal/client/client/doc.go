// Package client is a Go client for storefrontd.
//
// GRPCClient manages the connection, keeps the access token returned by
// Login and Signup, injects it into every call through an interceptor, and
// maps gRPC status codes to sentinel errors (ErrUnauthorized,
// ErrUnavailable, ErrRateLimited, ErrRejected) that callers can match with
// errors.Is.
//
// A client follows the server's single session: logging in from one client
// switches the identity for all of them, and the others' tokens stop being
// accepted.
package client
