package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"traveldiary-be/internal/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(jwtService *jwt.JWTService, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet(ContextUserIDKey),
			"username": c.MustGet(ContextUsernameKey),
		})
	})
	return router
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	headers := map[string]string{
		"no header":       "",
		"no bearer":       "some-token",
		"wrong scheme":    "Basic abc123",
		"bearer no token": "Bearer ",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			reached := false
			router := newTestRouter(jwtService, &reached)

			req := httptest.NewRequest("GET", "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.False(t, reached, "handler must not run without a valid token")
		})
	}
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	other := jwt.NewJWTService("other-secret", time.Hour)

	tok, err := other.GenerateToken(1, "mallory")
	require.NoError(t, err)

	reached := false
	router := newTestRouter(jwtService, &reached)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, reached)
}

func TestAuthMiddleware_PassesIdentityDownstream(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	tok, err := jwtService.GenerateToken(7, "alice")
	require.NoError(t, err)

	reached := false
	router := newTestRouter(jwtService, &reached)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, reached)
	require.Contains(t, w.Body.String(), `"user_id":7`)
	require.Contains(t, w.Body.String(), `"username":"alice"`)
}
