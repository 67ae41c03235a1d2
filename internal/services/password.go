package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
)

const (
	// PasswordPlain stores the password as entered and compares exactly.
	PasswordPlain = "plain"
	// PasswordBcrypt stores a bcrypt hash.
	PasswordBcrypt = "bcrypt"
	// PasswordArgon2 stores an encoded argon2id hash.
	PasswordArgon2 = "argon2"
)

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

func newPasswordHasher(scheme string) (passwordHasher, error) {
	switch scheme {
	case PasswordPlain, "":
		return plainHasher{}, nil
	case PasswordBcrypt:
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	case PasswordArgon2:
		return argon2Hasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownPasswordScheme, scheme)
	}
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return password, nil }

func (plainHasher) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (bcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

type argon2Hasher struct{}

func (argon2Hasher) Hash(password string) (string, error) {
	return cryptox.HashPassword(password)
}

// Verify treats a stored value that is not an argon2id hash as a mismatch.
func (argon2Hasher) Verify(stored, password string) bool {
	ok, err := cryptox.VerifyPassword(stored, password)
	return err == nil && ok
}
