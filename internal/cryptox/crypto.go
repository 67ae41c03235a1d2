// Package cryptox hashes account passwords with argon2id.
//
// Hashes are encoded as "argon2id$<salt hex>$<key hex>" so they can sit in
// the accounts list next to plain or bcrypt entries.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	prefix  = "argon2id"
	saltLen = 16
	keyLen  = 32
)

var ErrMalformedHash = errors.New("malformed argon2id hash")

// DeriveKey stretches password with salt using argon2id (1 pass, 64 MiB,
// 4 lanes).
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keyLen)
}

// HashPassword returns an encoded argon2id hash of password under a fresh
// random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	key := DeriveKey([]byte(password), salt)
	return prefix + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches encoded. A malformed
// encoding yields ErrMalformedHash.
func VerifyPassword(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != prefix {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) != keyLen {
		return false, ErrMalformedHash
	}

	got := DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
