// server/internal/api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"hadirkoe-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireSession validates the Bearer session token minted by
// validate-key. It is only mounted when auth.requireToken is enabled;
// by default the form endpoints are open, matching the UI-only gate.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			return
		}

		if _, err := auth.ParseSessionToken(secret, tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		c.Next()
	}
}
