package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToken(t *testing.T, signed, secret string) (*Claims, error) {
	t.Helper()
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	return claims, err
}

func TestGenerateToken(t *testing.T) {
	signed, err := GenerateToken(42, "vendor", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := parseToken(t, signed, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	signed, err := GenerateToken(1, "customer", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = parseToken(t, signed, "wrong-secret")
	assert.Error(t, err)
}

func TestGenerateTokenExpired(t *testing.T) {
	signed, err := GenerateToken(1, "customer", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(t, signed, "test-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
