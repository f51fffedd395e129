package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDedupeIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	got := dedupeIDs([]primitive.ObjectID{a, b, a, a, b})

	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

func TestDedupeIDs_Empty(t *testing.T) {
	assert.Empty(t, dedupeIDs(nil))
	assert.Empty(t, dedupeIDs([]primitive.ObjectID{}))
}

func TestInconsistencyError(t *testing.T) {
	cause := fmt.Errorf("write concern timeout")
	err := &InconsistencyError{
		GroupID: primitive.NewObjectID(),
		UserID:  primitive.NewObjectID(),
		Side:    "user",
		Err:     cause,
	}

	assert.Contains(t, err.Error(), "user side failed")
	assert.Contains(t, err.Error(), err.UserID.Hex())
	assert.Contains(t, err.Error(), err.GroupID.Hex())
	assert.True(t, errors.Is(err, cause))

	var target *InconsistencyError
	assert.True(t, errors.As(error(err), &target))
}
