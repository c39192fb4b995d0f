package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxCommentLength = 1000

var (
	ErrCommentEmpty   = errors.New("Comment cannot be empty.")
	ErrCommentTooLong = errors.New("Comment is too long (1000 characters max).")
)

// Comment is a note attached to a Feedback. Comments are never edited after
// creation; only staff may delete them.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FeedbackID primitive.ObjectID `bson:"feedback" json:"feedback"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	Text       string             `bson:"text" json:"text"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidateCommentText trims the text and checks it against the length
// constraints. The trimmed value is what gets persisted.
func ValidateCommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrCommentEmpty
	}
	if len(trimmed) > maxCommentLength {
		return "", ErrCommentTooLong
	}
	return trimmed, nil
}
