package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"roadwatch-be/models"
	"roadwatch-be/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentController struct {
	feedbacks repository.FeedbackRepository
	comments  repository.CommentRepository
}

func NewCommentController(feedbacks repository.FeedbackRepository, comments repository.CommentRepository) *CommentController {
	return &CommentController{feedbacks: feedbacks, comments: comments}
}

// AddComment appends a comment to a feedback entry. Any authenticated user
// may comment on any visible feedback; the text is trim-validated before
// anything is written.
func (cc *CommentController) AddComment(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Text string `form:"text" json:"text"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := models.ValidateCommentText(input.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"text": err.Error()}})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := cc.feedbacks.FindByID(ctx, feedbackID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		}
		return
	}

	comment := models.Comment{
		ID:         primitive.NewObjectID(),
		FeedbackID: feedbackID,
		UserID:     userID,
		Text:       text,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := cc.comments.Create(ctx, &comment); err != nil {
		log.Println("Error inserting comment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to add comment."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added.",
		"comment": comment,
	})
}
