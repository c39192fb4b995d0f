package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"roadwatch-be/models"
	"roadwatch-be/repository"
	"roadwatch-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackController struct {
	feedbacks repository.FeedbackRepository
	comments  repository.CommentRepository
	users     repository.UserRepository
}

func NewFeedbackController(feedbacks repository.FeedbackRepository, comments repository.CommentRepository, users repository.UserRepository) *FeedbackController {
	return &FeedbackController{feedbacks: feedbacks, comments: comments, users: users}
}

// feedbackForm is the submission payload shared by create and edit. The
// coordinate fields are pointers so an absent value can fall through to the
// raw-key channel.
type feedbackForm struct {
	RoadName    string   `form:"road_name" binding:"required,max=255"`
	Location    string   `form:"location" binding:"required,max=255"`
	State       string   `form:"state" binding:"required,max=100"`
	City        string   `form:"city" binding:"required,max=100"`
	Condition   string   `form:"condition" binding:"required"`
	IssueType   string   `form:"issue_type" binding:"required"`
	Description string   `form:"description" binding:"required"`
	Latitude    *float64 `form:"latitude"`
	Longitude   *float64 `form:"longitude"`
}

var feedbackFormKeys = map[string]string{
	"RoadName":    "road_name",
	"Location":    "location",
	"State":       "state",
	"City":        "city",
	"Condition":   "condition",
	"IssueType":   "issue_type",
	"Description": "description",
	"Latitude":    "latitude",
	"Longitude":   "longitude",
}

// bindFeedbackForm binds and validates the submission payload, collecting
// field-level errors instead of stopping at the first one.
func bindFeedbackForm(c *gin.Context) (*feedbackForm, map[string]string) {
	var form feedbackForm
	fieldErrors := map[string]string{}

	if err := c.ShouldBind(&form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				key := feedbackFormKeys[fe.Field()]
				if key == "" {
					key = fe.Field()
				}
				switch fe.Tag() {
				case "required":
					fieldErrors[key] = "This field is required."
				case "max":
					fieldErrors[key] = fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
				default:
					fieldErrors[key] = "Invalid value."
				}
			}
		} else {
			fieldErrors["__all__"] = err.Error()
		}
	}

	if form.Condition != "" && !models.ValidCondition(form.Condition) {
		fieldErrors["condition"] = "Select a valid choice."
	}
	if form.IssueType != "" && !models.ValidIssueType(form.IssueType) {
		fieldErrors["issue_type"] = "Select a valid choice."
	}

	return &form, fieldErrors
}

// resolveCoordinates applies the two-channel coordinate lookup to both axes
// independently: the structured form value if it parsed, then the raw POST
// keys under either naming convention.
func resolveCoordinates(c *gin.Context, form *feedbackForm) (*float64, *float64) {
	lat := utils.ResolveCoordinate(form.Latitude, c.PostForm("latitude"), c.PostForm("id_latitude"))
	lng := utils.ResolveCoordinate(form.Longitude, c.PostForm("longitude"), c.PostForm("id_longitude"))
	return lat, lng
}

// saveImage stores an uploaded road image (if any) and returns its path.
func saveImage(c *gin.Context, userID primitive.ObjectID) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil // no image attached
	}
	filename := fmt.Sprintf("feedback_%s_%d%s", userID.Hex(), time.Now().UnixNano(), filepath.Ext(file.Filename))
	savePath := filepath.Join("uploads", "road_images", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return nil, err
	}
	return &savePath, nil
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return objID, true
}

// SubmitFeedback handles the creation of a new road feedback entry.
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	form, fieldErrors := bindFeedbackForm(c)

	lat, lng := resolveCoordinates(c, form)
	if lat == nil || lng == nil {
		// Coordinate absence is a non-field error: nothing persists.
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please select a location on the map before submitting the feedback.",
			"errors": fieldErrors,
		})
		return
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	imageURL, err := saveImage(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the attached image"})
		return
	}

	feedback := models.Feedback{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		RoadName:    form.RoadName,
		Location:    form.Location,
		Latitude:    *lat,
		Longitude:   *lng,
		State:       form.State,
		City:        form.City,
		Condition:   models.RoadCondition(form.Condition),
		IssueType:   models.IssueType(form.IssueType),
		Description: form.Description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fc.feedbacks.Create(ctx, &feedback); err != nil {
		log.Println("Error inserting feedback:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully!",
		"feedback": feedback,
		"redirect": "/",
	})
}

// feedbackView is a feedback entry enriched with its author's username and
// its comments in conversational order.
type feedbackView struct {
	models.Feedback
	Author   string        `json:"author"`
	Comments []commentView `json:"comments,omitempty"`
}

type commentView struct {
	models.Comment
	Author string `json:"author"`
}

func (fc *FeedbackController) username(ctx context.Context, id primitive.ObjectID, cache map[primitive.ObjectID]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := ""
	if user, err := fc.users.FindByID(ctx, id); err == nil {
		name = user.Username
	}
	cache[id] = name
	return name
}

func (fc *FeedbackController) buildViews(ctx context.Context, feedbacks []models.Feedback, withComments bool) []feedbackView {
	cache := map[primitive.ObjectID]string{}
	views := make([]feedbackView, 0, len(feedbacks))
	for _, fb := range feedbacks {
		view := feedbackView{Feedback: fb, Author: fc.username(ctx, fb.UserID, cache)}
		if withComments {
			if comments, err := fc.comments.FindByFeedback(ctx, fb.ID); err == nil {
				view.Comments = make([]commentView, 0, len(comments))
				for _, cm := range comments {
					view.Comments = append(view.Comments, commentView{Comment: cm, Author: fc.username(ctx, cm.UserID, cache)})
				}
			}
		}
		views = append(views, view)
	}
	return views
}

// Dashboard returns every feedback entry (newest first, comments inlined)
// together with the condition and issue-type aggregates.
func (fc *FeedbackController) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedbacks, err := fc.feedbacks.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}

	conditionStats, err := fc.feedbacks.CountByField(ctx, "condition")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get condition stats"})
		return
	}
	issueStats, err := fc.feedbacks.CountByField(ctx, "issueType")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get issue stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks":      fc.buildViews(ctx, feedbacks, true),
		"conditionStats": conditionStats,
		"issueStats":     issueStats,
	})
}

// Analysis returns the three global groupings: by condition, by issue type,
// by state.
func (fc *FeedbackController) Analysis(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedbacks, err := fc.feedbacks.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}

	conditionStats, err := fc.feedbacks.CountByField(ctx, "condition")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get condition stats"})
		return
	}
	issueStats, err := fc.feedbacks.CountByField(ctx, "issueType")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get issue stats"})
		return
	}
	stateStats, err := fc.feedbacks.CountByField(ctx, "state")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get state stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks":      fc.buildViews(ctx, feedbacks, false),
		"conditionStats": conditionStats,
		"issueStats":     issueStats,
		"stateStats":     stateStats,
	})
}

// GetFeedback retrieves one feedback entry with its comments.
func (fc *FeedbackController) GetFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedback, err := fc.feedbacks.FindByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		}
		return
	}

	views := fc.buildViews(ctx, []models.Feedback{*feedback}, true)
	c.JSON(http.StatusOK, views[0])
}

// MyPosts lists the caller's feedback entries, newest first.
func (fc *FeedbackController) MyPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedbacks, err := fc.feedbacks.FindByOwner(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": fc.buildViews(ctx, feedbacks, true)})
}

// UpdateFeedback lets the owner edit their own entry. The lookup is scoped
// to the owner, so anyone else's request reads as not-found.
func (fc *FeedbackController) UpdateFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedback, err := fc.feedbacks.FindByIDAndOwner(ctx, feedbackID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		}
		return
	}

	form, fieldErrors := bindFeedbackForm(c)

	lat, lng := resolveCoordinates(c, form)
	if lat == nil || lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please set a location on the map.",
			"errors": fieldErrors,
		})
		return
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	imageURL, err := saveImage(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the attached image"})
		return
	}
	if imageURL != nil {
		feedback.ImageURL = imageURL
	}

	feedback.RoadName = form.RoadName
	feedback.Location = form.Location
	feedback.Latitude = *lat
	feedback.Longitude = *lng
	feedback.State = form.State
	feedback.City = form.City
	feedback.Condition = models.RoadCondition(form.Condition)
	feedback.IssueType = models.IssueType(form.IssueType)
	feedback.Description = form.Description
	feedback.UpdatedAt = time.Now()

	if err := fc.feedbacks.Update(ctx, feedback); err != nil {
		log.Println("Error updating feedback:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Your post has been updated.",
		"feedback": feedback,
	})
}

// DeleteOwnFeedback lets the owner delete their own entry, cascading to its
// comments.
func (fc *FeedbackController) DeleteOwnFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := fc.feedbacks.FindByIDAndOwner(ctx, feedbackID, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		}
		return
	}

	if err := fc.feedbacks.Delete(ctx, feedbackID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	// Cascade: a feedback's comments do not outlive it.
	if err := fc.comments.DeleteByFeedbackIDs(ctx, []primitive.ObjectID{feedbackID}); err != nil {
		log.Println("Error cascading comment delete:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your post has been deleted."})
}
