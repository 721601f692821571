package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	signed, err := GenerateAccessToken("user-1", "main_admin", "test-secret", 15)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(signed, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*AccessClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "main_admin", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	signed, err := GenerateAccessToken("user-1", "employee", "test-secret", 15)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.NotEmpty(t, first)
}
