package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_Inspect(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signed(t, jwt.MapClaims{
		"sub":  "user@example.com",
		"role": "VENDOR",
		"iat":  time.Now().Unix(),
		"exp":  exp.Unix(),
	})

	claims, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, "VENDOR", claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(exp.Add(time.Second)))
}

func TestJWTInspector_ExpiredTokenStillParses(t *testing.T) {
	t.Parallel()

	token := signed(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(-time.Minute).Unix()})

	claims, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestJWTInspector_NoExpiry(t *testing.T) {
	t.Parallel()

	claims, err := NewJWTInspector().Inspect(signed(t, jwt.MapClaims{"sub": "1"}))
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
}

func TestJWTInspector_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTInspector().Inspect("not-a-jwt")
	assert.Error(t, err)
}
