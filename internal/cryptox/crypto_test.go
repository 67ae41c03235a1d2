package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	assert.True(t, bytes.Equal(key1, key2))
	assert.Len(t, key1, keyLen)
	assert.False(t, bytes.Equal(key1, DeriveKey(password, []byte("other-salt"))))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h1, "argon2id$"))
	assert.NotEqual(t, h1, h2, "salt is random")

	ok, err := VerifyPassword(h1, "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(h1, "pw2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"pw1",
		"bcrypt$00$00",
		"argon2id$zz$00",
		"argon2id$00$abcd",
	} {
		_, err := VerifyPassword(encoded, "pw1")
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}
