package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expiresAt time.Time) string {
	t.Helper()

	claims := Claims{
		ID:       7,
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	token := signToken(t, "secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.ID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	token := signToken(t, "other-secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	_, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	token := signToken(t, "secret", jwt.SigningMethodHS256, time.Now().Add(-time.Minute))

	_, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	verifier := NewJWTVerifier("secret")

	_, err := verifier.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
