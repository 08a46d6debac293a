package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/proposal-voting-system/internal/utils"
)

// Context keys set for authenticated requests.
const (
	UserIDKey   = "userID"
	UsernameKey = "username"
)

func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")
		if !strings.HasPrefix(bearer, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := utils.ParseJWTToken(secret, strings.TrimPrefix(bearer, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(UserIDKey, claims.ID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
