package routes

import (
	"roadwatch-be/controllers"
	"roadwatch-be/middlewares"

	"github.com/gin-gonic/gin"
)

// FeedbackRoutes sets up the citizen-facing feedback routes
func FeedbackRoutes(r *gin.Engine, feedback *controllers.FeedbackController, comment *controllers.CommentController, submitLimit int) {
	group := r.Group("/api/feedback", middlewares.AuthMiddleware())
	{
		group.POST("/submit", middlewares.FeedbackRateLimiter(submitLimit), feedback.SubmitFeedback)
		group.GET("/dashboard", feedback.Dashboard)
		group.GET("/analysis", feedback.Analysis)
		group.GET("/mine", feedback.MyPosts)
		group.GET("/:id", feedback.GetFeedback)
		group.PUT("/:id", feedback.UpdateFeedback)
		group.DELETE("/:id", feedback.DeleteOwnFeedback)
		group.POST("/:id/comment", comment.AddComment)
	}
}
