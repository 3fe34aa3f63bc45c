package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"unicart/helpers"
)

// Identity attaches the external identity provider's claims when a valid
// token is present. Guests pass through untouched; placement and history
// both work without a login.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.Next()
			return
		}
		claims, msg := helpers.ValidateToken(clientToken)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		c.Set("uid", claims.Uid)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// AdminOnly guards staff endpoints. The key is checked against the bcrypt
// hash in ADMIN_KEY_HASH, so the plaintext never lives in the environment.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		keyHash := os.Getenv("ADMIN_KEY_HASH")
		if keyHash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
			c.Abort()
			return
		}
		adminKey := c.Request.Header.Get("X-Admin-Key")
		if adminKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin key is required"})
			c.Abort()
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(adminKey)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin key is incorrect"})
			c.Abort()
			return
		}
		c.Next()
	}
}
