package middleware

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireApprovedArtist gates artist routes until an admin has approved the
// account. The check is server side; a pending artist gets 403 regardless of
// what the client renders.
func RequireApprovedArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if user.Role != users.RoleArtist {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Artist access required"})
			return
		}
		if !user.IsApproved {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Artist account pending approval"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		c.Next()
	}
}
