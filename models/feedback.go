package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoadCondition enum
type RoadCondition string

const (
	Excellent RoadCondition = "excellent"
	Good      RoadCondition = "good"
	Fair      RoadCondition = "fair"
	Poor      RoadCondition = "poor"
	VeryPoor  RoadCondition = "very_poor"
)

// IssueType enum
type IssueType string

const (
	Pothole  IssueType = "pothole"
	Cracks   IssueType = "cracks"
	Drainage IssueType = "drainage"
	Signs    IssueType = "signs"
	Lighting IssueType = "lighting"
	Other    IssueType = "other"
)

var validConditions = map[string]bool{
	"excellent": true, "good": true, "fair": true,
	"poor": true, "very_poor": true,
}

var validIssueTypes = map[string]bool{
	"pothole": true, "cracks": true, "drainage": true,
	"signs": true, "lighting": true, "other": true,
}

// ValidCondition reports whether s is one of the road condition choices.
func ValidCondition(s string) bool {
	return validConditions[s]
}

// ValidIssueType reports whether s is one of the issue type choices.
func ValidIssueType(s string) bool {
	return validIssueTypes[s]
}

// Feedback represents a road-condition report submitted by a user.
// Latitude and longitude are always stored together; a document is never
// persisted with only one of them.
type Feedback struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	RoadName    string             `bson:"roadName" json:"roadName"`
	Location    string             `bson:"location" json:"location"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	State       string             `bson:"state" json:"state"`
	City        string             `bson:"city" json:"city"`
	Condition   RoadCondition      `bson:"condition" json:"condition"`
	IssueType   IssueType          `bson:"issueType" json:"issueType"`
	Description string             `bson:"description" json:"description"`
	ImageURL    *string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FieldCount is one bucket of a grouped count over a Feedback field.
type FieldCount struct {
	Label string `bson:"_id" json:"label"`
	Count int64  `bson:"count" json:"count"`
}
