package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/infrastructure/auth"
	"github.com/petroenergy/petrodash/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough-123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "petrodash-test",
		MaxRefreshCount:        3,
	})
}

func newTestTokenPair(t *testing.T, jwtService *auth.JWTService, accountID string, role identity.RoleCode) *auth.TokenPair {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		AccountID: accountID,
		Email:     "user@petroenergy.com.ph",
		Role:      string(role),
	})
	require.NoError(t, err)
	return pair
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	pair := newTestTokenPair(t, jwtService, "acct-1", identity.RoleEncoder)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, "acct-1", GetAccountID(c))
		assert.Equal(t, "R05", GetRole(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestJWTService()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_SkipPaths(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestJWTService()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_BlacklistedJTI(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	pair := newTestTokenPair(t, jwtService, "acct-1", identity.RoleEncoder)
	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

	cfg := DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = blacklist

	router := gin.New()
	router.Use(JWTAuthWithConfig(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestJWTAuth_DeactivatedAccountTokenRejected(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	pair := newTestTokenPair(t, jwtService, "acct-1", identity.RoleEncoder)

	cfg := DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = blacklist

	router := gin.New()
	router.Use(JWTAuthWithConfig(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := send()
	assert.Equal(t, http.StatusOK, rec.Code, "token should pass before the account is cut off")

	require.NoError(t, blacklist.AddAccountTokensToBlacklist(
		context.Background(), "acct-1", jwtService.GetRefreshTokenExpiration()))

	rec = send()
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "token minted before deactivation must be rejected")
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")

	// A different account's tokens are unaffected.
	other := newTestTokenPair(t, jwtService, "acct-2", identity.RoleEncoder)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+other.AccessToken)
	otherRec := httptest.NewRecorder()
	router.ServeHTTP(otherRec, req)
	assert.Equal(t, http.StatusOK, otherRec.Code)
}

func TestRequireRoles(t *testing.T) {
	jwtService := newTestJWTService()

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/admin", RequireRoles(identity.RoleSystemAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("allows a matching role", func(t *testing.T) {
		pair := newTestTokenPair(t, jwtService, "acct-1", identity.RoleSystemAdmin)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a non-matching role with the role names", func(t *testing.T) {
		pair := newTestTokenPair(t, jwtService, "acct-2", identity.RoleEncoder)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access denied. Required roles: System Administrator")
	})
}
