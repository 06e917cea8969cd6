package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gamelounge/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware validates a bearer admin token. The token must carry
// both the admin claim and an expiry.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if err := utils.VerifyAdminToken(tokenString); err != nil {
			// A validly signed token without the admin claim is a role
			// problem, not an authentication problem.
			if errors.Is(err, utils.ErrNotAdmin) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired admin token"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
