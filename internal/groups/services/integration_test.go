package services

import (
	"context"
	"testing"
	"time"

	"go-staffhub/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Integration tests run against a real MongoDB (MONGODB_URI or the local
// default) and are skipped in short mode.

func setupIntegration(t *testing.T) (*Service, *database.MongoDB) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mongodb, err := database.NewMongoDB(ctx, "staffhub_test")
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	t.Cleanup(func() {
		mongodb.Database.Drop(context.Background())
		mongodb.Close(context.Background())
	})

	s := NewService(mongodb)
	require.NoError(t, s.CreateIndexes(ctx))
	return s, mongodb
}

func insertUser(t *testing.T, mongodb *database.MongoDB, email string) primitive.ObjectID {
	t.Helper()

	now := time.Now().UTC()
	result, err := mongodb.Collection("users").InsertOne(context.Background(), bson.M{
		"email":              email,
		"name":               "Test User",
		"role":               "employee",
		"permissions":        bson.M{},
		"direct_permissions": bson.A{},
		"permission_groups":  bson.A{},
		"active":             true,
		"created_at":         now,
		"updated_at":         now,
	})
	require.NoError(t, err)
	return result.InsertedID.(primitive.ObjectID)
}

func TestAddMemberIdempotent(t *testing.T) {
	s, mongodb := setupIntegration(t)
	ctx := context.Background()

	admin := insertUser(t, mongodb, "admin@example.com")
	user := insertUser(t, mongodb, "worker@example.com")
	group, err := s.CreateGroup(ctx, "hr-team", "HR team", nil, admin)
	require.NoError(t, err)

	require.NoError(t, s.AddMember(ctx, group.ID, user))
	require.NoError(t, s.AddMember(ctx, group.ID, user))

	got, err := s.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{user}, got.Members)

	var userDoc struct {
		PermissionGroups []primitive.ObjectID `bson:"permission_groups"`
	}
	require.NoError(t, mongodb.Collection("users").FindOne(ctx, bson.M{"_id": user}).Decode(&userDoc))
	assert.Equal(t, []primitive.ObjectID{group.ID}, userDoc.PermissionGroups)
}

func TestMembershipRoundTrip(t *testing.T) {
	s, mongodb := setupIntegration(t)
	ctx := context.Background()

	admin := insertUser(t, mongodb, "admin@example.com")
	user := insertUser(t, mongodb, "worker@example.com")
	group, err := s.CreateGroup(ctx, "finance-team", "Finance team", nil, admin)
	require.NoError(t, err)

	require.NoError(t, s.AddMember(ctx, group.ID, user))
	require.NoError(t, s.RemoveMember(ctx, group.ID, user))

	got, err := s.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)

	var userDoc struct {
		PermissionGroups []primitive.ObjectID `bson:"permission_groups"`
	}
	require.NoError(t, mongodb.Collection("users").FindOne(ctx, bson.M{"_id": user}).Decode(&userDoc))
	assert.Empty(t, userDoc.PermissionGroups)

	// Removing again stays a no-op
	require.NoError(t, s.RemoveMember(ctx, group.ID, user))
}

func TestDeleteGroupCascade(t *testing.T) {
	s, mongodb := setupIntegration(t)
	ctx := context.Background()

	admin := insertUser(t, mongodb, "admin@example.com")
	userA := insertUser(t, mongodb, "a@example.com")
	userB := insertUser(t, mongodb, "b@example.com")
	group, err := s.CreateGroup(ctx, "it-team", "IT team", nil, admin)
	require.NoError(t, err)

	require.NoError(t, s.AddMember(ctx, group.ID, userA))
	require.NoError(t, s.AddMember(ctx, group.ID, userB))

	require.NoError(t, s.DeleteGroup(ctx, group.ID))

	_, err = s.GetGroup(ctx, group.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	// No user may keep a reference to the deleted group
	count, err := mongodb.Collection("users").CountDocuments(ctx, bson.M{"permission_groups": group.ID})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreatePermissionDuplicateKey(t *testing.T) {
	s, _ := setupIntegration(t)
	ctx := context.Background()

	_, err := s.CreatePermission(ctx, "reports.view", "View reports", "Read access to reports", "view")
	require.NoError(t, err)

	_, err = s.CreatePermission(ctx, "reports.view", "View reports again", "Duplicate entry", "view")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}
