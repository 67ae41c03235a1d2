// Package cli provides the interactive storefront shell.
//
// It opens the configured key-value backend, restores the last session and
// runs a REPL over the same session, cart and wishlist stores storefrontd
// serves. Store notifications are printed as they happen.
//
// Key features:
//   - Signup / Login / Logout
//   - Browse, search and inspect the catalog
//   - Manage the cart and wishlist of the logged-in identity
//   - Check out interactively and print the receipt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
