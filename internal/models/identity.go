// Package models defines the data shapes shared by the storefront stores,
// the gRPC transport and the CLI. JSON tags match the persisted layout and
// must stay backward-readable.
package models

// Identity is the public profile of the authenticated user.
// It never carries a credential.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Valid reports whether the record is usable as an active identity.
func (i Identity) Valid() bool {
	return i.ID != ""
}

// StoredAccount is the credential-bearing record kept in the account
// collection. Email is unique across the collection (case-sensitive).
type StoredAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity returns the account with the password stripped.
func (a StoredAccount) Identity() Identity {
	return Identity{ID: a.ID, Name: a.Name, Email: a.Email}
}

// Valid reports whether the record can take part in authentication lookups.
func (a StoredAccount) Valid() bool {
	return a.ID != "" && a.Email != ""
}
