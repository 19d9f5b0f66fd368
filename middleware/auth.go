package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homeserve/services/account"
)

// SessionAuthMiddleware guards routes behind the simulated session: the
// request must carry a bearer token issued by a sign-in or sign-up call.
func SessionAuthMiddleware(accounts account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || !accounts.Authenticate(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("sessionToken", tokenString)
		c.Next()
	}
}
