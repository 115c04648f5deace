package middleware

import (
	"net/http"

	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/gin-gonic/gin"
)

// RequireAdmin is a middleware that rejects callers without the admin flag.
// It must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		if !ident.IsAdmin {
			err := apperr.Forbiddenf("You do not have permission to perform this action.")
			c.JSON(err.Status(), gin.H{"error": err.Message})
			c.Abort()
			return
		}

		c.Next()
	}
}
