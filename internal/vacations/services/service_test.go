package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc := NewService(nil)

	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)

	request, err := svc.Create(context.Background(), primitive.NewObjectID(), start, end, "beach week")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, request)
}
