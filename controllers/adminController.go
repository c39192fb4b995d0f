package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"roadwatch-be/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminController serves the staff moderation surface. Every route it backs
// sits behind StaffMiddleware, so handlers assume a vetted moderator.
type AdminController struct {
	feedbacks repository.FeedbackRepository
	comments  repository.CommentRepository
	users     repository.UserRepository
}

func NewAdminController(feedbacks repository.FeedbackRepository, comments repository.CommentRepository, users repository.UserRepository) *AdminController {
	return &AdminController{feedbacks: feedbacks, comments: comments, users: users}
}

// Dashboard lists all feedback and all comments for moderation.
func (ac *AdminController) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedbacks, err := ac.feedbacks.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}

	comments, err := ac.comments.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks": feedbacks,
		"comments":  comments,
	})
}

// DeleteFeedback removes one feedback entry and its comments.
func (ac *AdminController) DeleteFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := ac.feedbacks.FindByID(ctx, feedbackID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		}
		return
	}

	if err := ac.feedbacks.Delete(ctx, feedbackID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	if err := ac.comments.DeleteByFeedbackIDs(ctx, []primitive.ObjectID{feedbackID}); err != nil {
		log.Println("Error cascading comment delete:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted."})
}

// DeleteComment removes exactly one comment.
func (ac *AdminController) DeleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deleted, err := ac.comments.Delete(ctx, commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted."})
}

// BulkDeleteFeedback removes every feedback entry whose id is in the payload
// and cascades to their comments. Ids that do not resolve are ignored; an
// empty selection is reported distinctly from a deletion.
func (ac *AdminController) BulkDeleteFeedback(c *gin.Context) {
	var input struct {
		SelectedFeedback []string `form:"selected_feedback" json:"selected_feedback"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.SelectedFeedback) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No feedback selected for deletion."})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(input.SelectedFeedback))
	for _, raw := range input.SelectedFeedback {
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			ids = append(ids, id)
		}
		// malformed ids cannot resolve to a record; skip them silently
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := ac.feedbacks.DeleteMany(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	if err := ac.comments.DeleteByFeedbackIDs(ctx, ids); err != nil {
		log.Println("Error cascading comment delete:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Deleted %d feedback item(s).", count),
		"deleted": count,
	})
}
