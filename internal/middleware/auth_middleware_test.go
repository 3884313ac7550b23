package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/registrar/internal/pkg/auth"
)

func authTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		subject := c.GetString(ContextKeySubject)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return router
}

func newAuthService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "registrar-test",
	})
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newAuthService(time.Hour)
	token, err := jwtService.GenerateToken("registrar-admin")
	require.NoError(t, err)

	router := authTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "registrar-admin")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := authTestRouter(newAuthService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := authTestRouter(newAuthService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredService := newAuthService(-time.Minute)
	token, err := expiredService.GenerateToken("registrar-admin")
	require.NoError(t, err)

	router := authTestRouter(newAuthService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}
