package routes

import (
	"roadwatch-be/controllers"
	"roadwatch-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the staff moderation routes. The staff check runs in
// middleware, before any handler reads data.
func AdminRoutes(r *gin.Engine, admin *controllers.AdminController) {
	group := r.Group("/api/admin", middlewares.AuthMiddleware(), middlewares.StaffMiddleware())
	{
		group.GET("/dashboard", admin.Dashboard)
		group.DELETE("/feedback/:id", admin.DeleteFeedback)
		group.DELETE("/comment/:id", admin.DeleteComment)
		group.POST("/feedback/bulk-delete", admin.BulkDeleteFeedback)
	}
}
