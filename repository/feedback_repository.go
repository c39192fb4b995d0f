package repository

import (
	"context"

	"roadwatch-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepository is the data access surface for road feedback entries.
// The submission, aggregation and moderation paths depend on this interface
// rather than on the storage engine.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	// FindAll returns every feedback, newest first.
	FindAll(ctx context.Context) ([]models.Feedback, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	// FindByIDAndOwner scopes the lookup to the owner in a single query, so a
	// non-owner's request reads as not-found rather than forbidden.
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Feedback, error)
	// FindByOwner returns the owner's feedback, newest first.
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Feedback, error)
	Update(ctx context.Context, fb *models.Feedback) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteMany removes every feedback whose id is in ids, silently ignoring
	// ids that do not resolve, and returns the count actually removed.
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	// CountByField groups all feedback by the given field and returns one
	// bucket per distinct observed value, labels sorted ascending.
	CountByField(ctx context.Context, field string) ([]models.FieldCount, error)
}

type mongoFeedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository returns a FeedbackRepository backed by the
// "feedbacks" collection of db.
func NewFeedbackRepository(db *mongo.Database) FeedbackRepository {
	return &mongoFeedbackRepository{collection: db.Collection("feedbacks")}
}

func (r *mongoFeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	_, err := r.collection.InsertOne(ctx, fb)
	return err
}

func (r *mongoFeedbackRepository) FindAll(ctx context.Context) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoFeedbackRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{"userId": ownerID})
}

func (r *mongoFeedbackRepository) find(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *mongoFeedbackRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&fb)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *mongoFeedbackRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": ownerID}).Decode(&fb)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *mongoFeedbackRepository) Update(ctx context.Context, fb *models.Feedback) error {
	update := bson.M{"$set": bson.M{
		"roadName":    fb.RoadName,
		"location":    fb.Location,
		"latitude":    fb.Latitude,
		"longitude":   fb.Longitude,
		"state":       fb.State,
		"city":        fb.City,
		"condition":   fb.Condition,
		"issueType":   fb.IssueType,
		"description": fb.Description,
		"imageUrl":    fb.ImageURL,
		"updatedAt":   fb.UpdatedAt,
	}}
	// Ownership and createdAt are immutable; they never appear in the $set.
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": fb.ID}, update)
	return err
}

func (r *mongoFeedbackRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoFeedbackRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *mongoFeedbackRepository) CountByField(ctx context.Context, field string) ([]models.FieldCount, error) {
	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$" + field,
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$sort": bson.M{"_id": 1},
		},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []models.FieldCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
