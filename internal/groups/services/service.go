package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authModels "go-staffhub/internal/auth/models"
	"go-staffhub/internal/groups/models"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors the routes layer maps onto HTTP statuses.
var (
	ErrPermissionNotFound = errors.New("permission not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateKey       = errors.New("permission key already exists")
	ErrDuplicateName      = errors.New("group name already exists")
	ErrUnknownPermissions = errors.New("unknown permission ids")
)

// Service owns the permission registry and permission groups, including
// the only write path for group membership.
type Service struct {
	mongodb *database.MongoDB
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

func (s *Service) permissionsCol() *mongo.Collection {
	return s.mongodb.Collection("permissions")
}

func (s *Service) groupsCol() *mongo.Collection {
	return s.mongodb.Collection("permission_groups")
}

func (s *Service) usersCol() *mongo.Collection {
	return s.mongodb.Collection("users")
}

// CreateIndexes sets up the unique indexes backing conflict detection.
func (s *Service) CreateIndexes(ctx context.Context) error {
	_, err := s.permissionsCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create permissions key index: %w", err)
	}

	_, err = s.groupsCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create groups name index: %w", err)
	}

	return nil
}

// SeedRegistry upserts the built-in permission catalog. Existing entries
// keep their ids; labels and categories follow the catalog.
func (s *Service) SeedRegistry(ctx context.Context) error {
	for _, perm := range permissions.DefaultRegistry {
		filter := bson.M{"key": perm.Key}
		update := bson.M{
			"$set": bson.M{
				"label":       perm.Label,
				"description": perm.Description,
				"category":    string(perm.Category),
			},
			"$setOnInsert": bson.M{
				"key":        perm.Key,
				"created_at": time.Now().UTC(),
			},
		}
		if _, err := s.permissionsCol().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", perm.Key, err)
		}
	}

	slog.Info("Permission registry seeded", "entries", len(permissions.DefaultRegistry))
	return nil
}

// ListPermissions returns the full registry sorted by category then key.
func (s *Service) ListPermissions(ctx context.Context) ([]models.PermissionDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "key", Value: 1}})
	cursor, err := s.permissionsCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer cursor.Close(ctx)

	var perms []models.PermissionDoc
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}
	return perms, nil
}

// GetPermission loads a registry entry by id.
func (s *Service) GetPermission(ctx context.Context, id primitive.ObjectID) (*models.PermissionDoc, error) {
	var perm models.PermissionDoc
	err := s.permissionsCol().FindOne(ctx, bson.M{"_id": id}).Decode(&perm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to query permission: %w", err)
	}
	return &perm, nil
}

// CreatePermission adds a registry entry. Duplicate keys conflict.
func (s *Service) CreatePermission(ctx context.Context, key, label, description, category string) (*models.PermissionDoc, error) {
	perm := models.PermissionDoc{
		Key:         key,
		Label:       label,
		Description: description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	result, err := s.permissionsCol().InsertOne(ctx, perm)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}

	perm.ID = result.InsertedID.(primitive.ObjectID)
	return &perm, nil
}

// DeletePermission removes a registry entry and scrubs every reference:
// group permission sets and user direct grants.
func (s *Service) DeletePermission(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.permissionsCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrPermissionNotFound
	}

	if _, err := s.groupsCol().UpdateMany(ctx,
		bson.M{"permissions": id},
		bson.M{"$pull": bson.M{"permissions": id}},
	); err != nil {
		return fmt.Errorf("failed to remove permission from groups: %w", err)
	}

	if _, err := s.usersCol().UpdateMany(ctx,
		bson.M{"direct_permissions": id},
		bson.M{"$pull": bson.M{"direct_permissions": id}},
	); err != nil {
		return fmt.Errorf("failed to remove permission from users: %w", err)
	}

	return nil
}

// ListGroups returns every permission group.
func (s *Service) ListGroups(ctx context.Context) ([]models.PermissionGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.groupsCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []models.PermissionGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}
	return groups, nil
}

// GetGroup loads a single group by id.
func (s *Service) GetGroup(ctx context.Context, id primitive.ObjectID) (*models.PermissionGroup, error) {
	var group models.PermissionGroup
	err := s.groupsCol().FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to query group: %w", err)
	}
	return &group, nil
}

// ResolveGroup loads a group with its permission documents and member
// accounts resolved for the admin surface.
func (s *Service) ResolveGroup(ctx context.Context, group *models.PermissionGroup) ([]models.PermissionDoc, []authModels.User, error) {
	var perms []models.PermissionDoc
	if len(group.Permissions) > 0 {
		cursor, err := s.permissionsCol().Find(ctx, bson.M{"_id": bson.M{"$in": group.Permissions}})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve group permissions: %w", err)
		}
		if err := cursor.All(ctx, &perms); err != nil {
			return nil, nil, fmt.Errorf("failed to decode group permissions: %w", err)
		}
	}

	var members []authModels.User
	if len(group.Members) > 0 {
		cursor, err := s.usersCol().Find(ctx, bson.M{"_id": bson.M{"$in": group.Members}})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve group members: %w", err)
		}
		if err := cursor.All(ctx, &members); err != nil {
			return nil, nil, fmt.Errorf("failed to decode group members: %w", err)
		}
	}

	return perms, members, nil
}

// CreateGroup inserts a new group after verifying every referenced
// permission exists. Duplicate names conflict.
func (s *Service) CreateGroup(ctx context.Context, name, description string, permissionIDs []primitive.ObjectID, createdBy primitive.ObjectID) (*models.PermissionGroup, error) {
	if err := s.verifyPermissionIDs(ctx, permissionIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	group := models.PermissionGroup{
		Name:        name,
		Description: description,
		Permissions: dedupeIDs(permissionIDs),
		Members:     []primitive.ObjectID{},
		CreatedBy:   &createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := s.groupsCol().InsertOne(ctx, group)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	group.ID = result.InsertedID.(primitive.ObjectID)
	return &group, nil
}

// UpdateGroup applies a partial update. Nil fields are left untouched;
// a non-nil permissions slice replaces the set wholesale.
func (s *Service) UpdateGroup(ctx context.Context, id primitive.ObjectID, name, description *string, permissionIDs []primitive.ObjectID) (*models.PermissionGroup, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
	}
	if description != nil {
		set["description"] = *description
	}
	if permissionIDs != nil {
		if err := s.verifyPermissionIDs(ctx, permissionIDs); err != nil {
			return nil, err
		}
		set["permissions"] = dedupeIDs(permissionIDs)
	}

	var group models.PermissionGroup
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.groupsCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return &group, nil
}

// DeleteGroup pulls the group id from every member's permission_groups,
// then removes the group document. The cleanup pass runs first so a crash
// between the two steps cannot leave users pointing at a deleted group.
func (s *Service) DeleteGroup(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.GetGroup(ctx, id); err != nil {
		return err
	}

	if _, err := s.usersCol().UpdateMany(ctx,
		bson.M{"permission_groups": id},
		bson.M{"$pull": bson.M{"permission_groups": id}},
	); err != nil {
		return fmt.Errorf("failed to detach group from users: %w", err)
	}

	if _, err := s.groupsCol().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

func (s *Service) verifyPermissionIDs(ctx context.Context, ids []primitive.ObjectID) error {
	deduped := dedupeIDs(ids)
	if len(deduped) == 0 {
		return nil
	}

	count, err := s.permissionsCol().CountDocuments(ctx, bson.M{"_id": bson.M{"$in": deduped}})
	if err != nil {
		return fmt.Errorf("failed to verify permission ids: %w", err)
	}
	if int(count) != len(deduped) {
		return ErrUnknownPermissions
	}
	return nil
}

// dedupeIDs returns the input set with duplicates removed, order preserved.
func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
