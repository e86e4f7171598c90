package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shawarma-shop/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("65f1a2b3c4d5e6f7a8b9c0d1", "admin@shawarma.shop", true)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d1", claims.UserID)
	assert.Equal(t, "admin@shawarma.shop", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("65f1a2b3c4d5e6f7a8b9c0d1", "admin@shawarma.shop", true)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("65f1a2b3c4d5e6f7a8b9c0d1", "admin@shawarma.shop", false)
	require.NoError(t, err)

	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "different-secret"
	defer func() { config.AppConfig.JWTSecret = prev }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
