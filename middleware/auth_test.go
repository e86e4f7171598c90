package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shawarma-shop/config"
	"shawarma-shop/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/admin/ping", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user": c.GetString("user_email")})
	})
	return r
}

func doAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := doAuth(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	w := doAuth(protectedRouter(), "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	w := doAuth(protectedRouter(), "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	token, err := utils.GenerateToken("65f1a2b3c4d5e6f7a8b9c0d1", "customer@example.com", false)
	require.NoError(t, err)

	w := doAuth(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	token, err := utils.GenerateToken("65f1a2b3c4d5e6f7a8b9c0d1", "admin@shawarma.shop", true)
	require.NoError(t, err)

	w := doAuth(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
