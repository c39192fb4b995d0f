package repository

import (
	"context"

	"roadwatch-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository is the data access surface for comments on feedback.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// FindByFeedback returns the feedback's comments oldest first, preserving
	// conversational chronology.
	FindByFeedback(ctx context.Context, feedbackID primitive.ObjectID) ([]models.Comment, error)
	// FindAll returns every comment, newest first (moderation listing).
	FindAll(ctx context.Context) ([]models.Comment, error)
	// Delete removes one comment and returns the count removed (0 or 1).
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// DeleteByFeedbackIDs removes every comment attached to the given
	// feedback ids; this is the cascade path for feedback deletion.
	DeleteByFeedbackIDs(ctx context.Context, feedbackIDs []primitive.ObjectID) error
}

type mongoCommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository returns a CommentRepository backed by the "comments"
// collection of db.
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &mongoCommentRepository{collection: db.Collection("comments")}
}

func (r *mongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

func (r *mongoCommentRepository) FindByFeedback(ctx context.Context, feedbackID primitive.ObjectID) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"feedback": feedbackID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *mongoCommentRepository) FindAll(ctx context.Context) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *mongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *mongoCommentRepository) DeleteByFeedbackIDs(ctx context.Context, feedbackIDs []primitive.ObjectID) error {
	if len(feedbackIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"feedback": bson.M{"$in": feedbackIDs}})
	return err
}
