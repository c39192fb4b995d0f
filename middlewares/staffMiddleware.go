package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaffMiddleware gates moderation routes. It runs after AuthMiddleware and
// rejects any caller that is not an active staff user before the handler
// touches any data.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isActive, _ := c.Get("is_active")
		isStaff, _ := c.Get("is_staff")

		active, _ := isActive.(bool)
		staff, _ := isStaff.(bool)

		if !active || !staff {
			c.JSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
