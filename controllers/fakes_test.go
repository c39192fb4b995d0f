package controllers

import (
	"context"
	"sort"

	"roadwatch-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes so handler behavior can be exercised without a
// running MongoDB.

type fakeFeedbackRepo struct {
	items map[primitive.ObjectID]models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: map[primitive.ObjectID]models.Feedback{}}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, fb *models.Feedback) error {
	r.items[fb.ID] = *fb
	return nil
}

func (r *fakeFeedbackRepo) sorted(filter func(models.Feedback) bool) []models.Feedback {
	out := []models.Feedback{}
	for _, fb := range r.items {
		if filter(fb) {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeFeedbackRepo) FindAll(_ context.Context) ([]models.Feedback, error) {
	return r.sorted(func(models.Feedback) bool { return true }), nil
}

func (r *fakeFeedbackRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Feedback, error) {
	return r.sorted(func(fb models.Feedback) bool { return fb.UserID == ownerID }), nil
}

func (r *fakeFeedbackRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	fb, ok := r.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &fb, nil
}

func (r *fakeFeedbackRepo) FindByIDAndOwner(_ context.Context, id, ownerID primitive.ObjectID) (*models.Feedback, error) {
	fb, ok := r.items[id]
	if !ok || fb.UserID != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	return &fb, nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, fb *models.Feedback) error {
	stored, ok := r.items[fb.ID]
	if !ok {
		return nil
	}
	updated := *fb
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	r.items[fb.ID] = updated
	return nil
}

func (r *fakeFeedbackRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFeedbackRepo) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeFeedbackRepo) CountByField(_ context.Context, field string) ([]models.FieldCount, error) {
	buckets := map[string]int64{}
	for _, fb := range r.items {
		switch field {
		case "condition":
			buckets[string(fb.Condition)]++
		case "issueType":
			buckets[string(fb.IssueType)]++
		case "state":
			buckets[fb.State]++
		}
	}
	counts := []models.FieldCount{}
	for label, count := range buckets {
		counts = append(counts, models.FieldCount{Label: label, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	return counts, nil
}

type fakeCommentRepo struct {
	items map[primitive.ObjectID]models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{items: map[primitive.ObjectID]models.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.items[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) FindByFeedback(_ context.Context, feedbackID primitive.ObjectID) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, cm := range r.items {
		if cm.FeedbackID == feedbackID {
			out = append(out, cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommentRepo) FindAll(_ context.Context) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, cm := range r.items {
		out = append(out, cm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeCommentRepo) DeleteByFeedbackIDs(_ context.Context, feedbackIDs []primitive.ObjectID) error {
	for id, cm := range r.items {
		for _, fbID := range feedbackIDs {
			if cm.FeedbackID == fbID {
				delete(r.items, id)
				break
			}
		}
	}
	return nil
}

type fakeUserRepo struct {
	items map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[primitive.ObjectID]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.items[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.items {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) CountByEmailOrUsername(_ context.Context, email, username string) (int64, error) {
	var count int64
	for _, user := range r.items {
		if user.Email == email || user.Username == username {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) CountStaff(_ context.Context) (int64, error) {
	var count int64
	for _, user := range r.items {
		if user.IsStaff {
			count++
		}
	}
	return count, nil
}
