package routes

import (
	"testing"
	"time"

	"go-staffhub/internal/groups/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, err := parseObjectIDs([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)

	_, err = parseObjectIDs([]string{a.Hex(), "nothex"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothex")

	ids, err = parseObjectIDs(nil)
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestGroupSummary(t *testing.T) {
	perm := primitive.NewObjectID()
	now := time.Now().UTC()
	g := models.PermissionGroup{
		ID:          primitive.NewObjectID(),
		Name:        "hr-team",
		Description: "HR staff",
		Permissions: []primitive.ObjectID{perm},
		Members:     []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	summary := groupSummary(g)

	assert.Equal(t, g.ID.Hex(), summary.ID)
	assert.Equal(t, "hr-team", summary.Name)
	assert.Equal(t, []string{perm.Hex()}, summary.Permissions)
	assert.Equal(t, 2, summary.MemberCount)
}
