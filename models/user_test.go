package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserPasswordHashing(t *testing.T) {
	u := &User{Password: "hunter22"}
	require.NoError(t, u.HashPassword())
	assert.NotEqual(t, "hunter22", u.Password)
	assert.True(t, u.ComparePassword("hunter22"))
	assert.False(t, u.ComparePassword("hunter23"))
}

func TestCanModerate(t *testing.T) {
	assert.True(t, (&User{IsActive: true, IsStaff: true}).CanModerate())
	assert.False(t, (&User{IsActive: true, IsStaff: false}).CanModerate())
	assert.False(t, (&User{IsActive: false, IsStaff: true}).CanModerate())
	assert.False(t, (&User{}).CanModerate())
}

func TestCanModify(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	fb := &Feedback{UserID: owner}

	assert.True(t, (&User{ID: owner}).CanModify(fb))
	assert.False(t, (&User{ID: stranger}).CanModify(fb))
}
