package controllers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"roadwatch-be/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type commentTestEnv struct {
	router    *gin.Engine
	feedbacks *fakeFeedbackRepo
	comments  *fakeCommentRepo
}

func newCommentTestEnv(userID primitive.ObjectID) *commentTestEnv {
	gin.SetMode(gin.TestMode)
	env := &commentTestEnv{
		feedbacks: newFakeFeedbackRepo(),
		comments:  newFakeCommentRepo(),
	}
	cc := NewCommentController(env.feedbacks, env.comments)

	r := gin.New()
	r.POST("/api/feedback/:id/comment", authAs(userID), cc.AddComment)
	env.router = r
	return env
}

func (env *commentTestEnv) seedFeedback(owner primitive.ObjectID) models.Feedback {
	fb := models.Feedback{
		ID:        primitive.NewObjectID(),
		UserID:    owner,
		RoadName:  "Some Road",
		Condition: models.Good,
		IssueType: models.Cracks,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	env.feedbacks.items[fb.ID] = fb
	return fb
}

func TestAddCommentPersistsTrimmedText(t *testing.T) {
	commenter := primitive.NewObjectID()
	env := newCommentTestEnv(commenter)
	// Commenting does not require ownership of the feedback.
	fb := env.seedFeedback(primitive.NewObjectID())

	w := postForm(env.router, http.MethodPost, "/api/feedback/"+fb.ID.Hex()+"/comment",
		url.Values{"text": {"  Needs urgent repair  "}})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.comments.items, 1)
	for _, cm := range env.comments.items {
		assert.Equal(t, "Needs urgent repair", cm.Text)
		assert.Equal(t, commenter, cm.UserID)
		assert.Equal(t, fb.ID, cm.FeedbackID)
	}
}

func TestAddCommentToMissingFeedback(t *testing.T) {
	env := newCommentTestEnv(primitive.NewObjectID())

	w := postForm(env.router, http.MethodPost, "/api/feedback/"+primitive.NewObjectID().Hex()+"/comment",
		url.Values{"text": {"hello"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, env.comments.items)
}

func TestAddCommentRejectsBlankText(t *testing.T) {
	env := newCommentTestEnv(primitive.NewObjectID())
	fb := env.seedFeedback(primitive.NewObjectID())

	for _, text := range []string{"", "   ", "\t\n"} {
		w := postForm(env.router, http.MethodPost, "/api/feedback/"+fb.ID.Hex()+"/comment",
			url.Values{"text": {text}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Empty(t, env.comments.items)
}

func TestAddCommentRejectsOverlongText(t *testing.T) {
	env := newCommentTestEnv(primitive.NewObjectID())
	fb := env.seedFeedback(primitive.NewObjectID())

	w := postForm(env.router, http.MethodPost, "/api/feedback/"+fb.ID.Hex()+"/comment",
		url.Values{"text": {strings.Repeat("a", 1001)}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.comments.items)
}
