package middleware

import (
	"net/http"
	"strings"

	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and checks its hash against
// the session registry, so revoked tokens fail even before expiry.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		valid, err := utils.SessionTokenValid(utils.GetAuthCacheClient(), userID, tokenHash)
		if err != nil || !valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("userID", userID)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}
