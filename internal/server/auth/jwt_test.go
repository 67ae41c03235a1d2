package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/common"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("user-123", []byte("super-secret"), time.Hour)
	require.NoError(t, err)

	sub, err := SubjectFromToken(tok, []byte("super-secret"))
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestSubjectFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("user-1", []byte("secret"), -time.Second)
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, []byte("secret"))
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestSubjectFromToken_Invalid(t *testing.T) {
	t.Parallel()

	good, err := GenerateToken("user-2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "someone-else",
		Subject: "user-2",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "wrong-secret"},
		{"malformed", "not.a.jwt", "k"},
		{"empty", "", "k"},
		{"no subject", noSubject, "k"},
		{"foreign issuer", foreign, "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SubjectFromToken(tt.token, []byte(tt.secret))
			require.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
