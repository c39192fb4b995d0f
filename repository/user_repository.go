package repository

import (
	"context"

	"roadwatch-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the data access surface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CountByEmailOrUsername(ctx context.Context, email, username string) (int64, error)
	// CountStaff reports how many staff accounts exist; the startup
	// bootstrap uses it to decide whether to seed a default superuser.
	CountStaff(ctx context.Context) (int64, error)
}

type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a UserRepository backed by the "users"
// collection of db.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{collection: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) CountByEmailOrUsername(ctx context.Context, email, username string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": email},
		{"username": username},
	}})
}

func (r *mongoUserRepository) CountStaff(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isStaff": true})
}
