package middleware

import (
	"net/http"
	"strings"

	"traveldiary-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// Keys under which the authenticated identity is stored in the gin context
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthMiddleware verifies the Bearer token on protected routes and exposes
// the decoded identity to downstream handlers. The verified token is the
// only source of the caller's user ID; request bodies and parameters are
// never trusted for identity.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid Authorization header format",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid JWT Token",
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid JWT Token",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
