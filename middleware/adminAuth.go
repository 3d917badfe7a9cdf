package middleware

import (
	"net/http"

	userRepo "studyhub/database/repository/user"
	"studyhub/models"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware requires an authenticated user with the admin role.
// It must run after JWTAuthMiddleware.
func AdminAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		u, err := users.GetByID(userID)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
