package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessibleBy(t *testing.T) {
	owner := primitive.NewObjectID()
	shared := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	file := FileShare{
		OwnerID:    owner,
		SharedWith: []primitive.ObjectID{shared},
	}

	assert.True(t, file.AccessibleBy(owner))
	assert.True(t, file.AccessibleBy(shared))
	assert.False(t, file.AccessibleBy(stranger))
}

func TestAccessibleByEmptyShareList(t *testing.T) {
	file := FileShare{OwnerID: primitive.NewObjectID()}
	assert.False(t, file.AccessibleBy(primitive.NewObjectID()))
}
