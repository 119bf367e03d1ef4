package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroenergy/petrodash/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-for-jwt-signing-32ch",
		RefreshSecret:          "test-refresh-secret-key-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "petrodash-test",
		MaxRefreshCount:        3,
	}
}

func testTokenInput() GenerateTokenInput {
	return GenerateTokenInput{
		AccountID:    "acc-001",
		Email:        "encoder@petroenergy.com.ph",
		Role:         "R05",
		PowerPlantID: "PSC",
		CompanyID:    "PSC",
	}
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	pair, err := svc.GenerateTokenPair(testTokenInput())
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.AccessTokenExpiresAt.Before(pair.RefreshTokenExpiresAt))
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	t.Run("valid token round trips claims", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, "acc-001", claims.AccountID)
		assert.Equal(t, "encoder@petroenergy.com.ph", claims.Email)
		assert.Equal(t, "R05", claims.Role)
		assert.Equal(t, "PSC", claims.PowerPlantID)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects refresh token as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		otherCfg := testJWTConfig()
		otherCfg.Secret = "completely-different-secret-key-32ch"
		other := NewJWTService(otherCfg)

		pair, err := other.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.AccessTokenExpiration = -time.Minute
		expired := NewJWTService(cfg)

		pair, err := expired.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		_, err = expired.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	t.Run("rotates the pair and increments refresh count", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		newPair, err := svc.RefreshTokenPair(pair.RefreshToken, testTokenInput())
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(newPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.RefreshCount)
	})

	t.Run("enforces max refresh count", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		refreshToken := pair.RefreshToken
		for i := 0; i < 3; i++ {
			newPair, err := svc.RefreshTokenPair(refreshToken, testTokenInput())
			require.NoError(t, err)
			refreshToken = newPair.RefreshToken
		}

		_, err = svc.RefreshTokenPair(refreshToken, testTokenInput())
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("rejects access token as refresh token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		_, err = svc.RefreshTokenPair(pair.AccessToken, testTokenInput())
		assert.Error(t, err)
	})

	t.Run("picks up a role change on rotation", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)

		input := testTokenInput()
		input.Role = "R04"
		newPair, err := svc.RefreshTokenPair(pair.RefreshToken, input)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(newPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "R04", claims.Role)
	})
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	pair, err := svc.GenerateTokenPair(testTokenInput())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 14*time.Minute)
	assert.LessOrEqual(t, ttl, 15*time.Minute)
}
