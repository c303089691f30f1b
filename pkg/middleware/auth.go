package middleware

import (
	"net/http"
	"strings"

	"stylefeed/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid Bearer token and sets user_id/user_role in
// the request context. Missing or invalid credentials get 401.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveSession(c, jwtService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a session when one is presented and passes
// anonymous requests through with an empty user_id. Invalid tokens are treated
// the same as no token, never as an error.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveSession(c, jwtService); ok {
			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context, jwtService *jwt.Service) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
