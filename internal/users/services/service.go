package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authModels "go-staffhub/internal/auth/models"
	authServices "go-staffhub/internal/auth/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Publisher delivers real-time events to a specific user. The websocket
// module provides it; delivery is fire-and-forget.
type Publisher interface {
	PublishTo(ctx context.Context, userID, event string, payload any) error
}

// NotificationWriter stores a notification record for a user.
type NotificationWriter interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, body string)
}

// PrincipalSource resolves a user id to a loaded principal snapshot.
// Satisfied by the auth module's PrincipalLoader.
type PrincipalSource interface {
	Load(ctx context.Context, userID primitive.ObjectID) (*authModels.AuthenticatedUser, error)
}

// Service manages user accounts and their permission assignments.
type Service struct {
	mongodb    *database.MongoDB
	principals PrincipalSource
	publisher  Publisher
	notifier   NotificationWriter
}

func NewService(mongodb *database.MongoDB, principals PrincipalSource) *Service {
	return &Service{
		mongodb:    mongodb,
		principals: principals,
	}
}

// SetPublisher wires the real-time side-channel after module construction.
func (s *Service) SetPublisher(p Publisher) {
	s.publisher = p
}

// SetNotifier wires the notification store after module construction.
func (s *Service) SetNotifier(n NotificationWriter) {
	s.notifier = n
}

func (s *Service) usersCol() *mongo.Collection {
	return s.mongodb.Collection("users")
}

// ListUsers returns every account sorted by name.
func (s *Service) ListUsers(ctx context.Context) ([]authModels.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.usersCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []authModels.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetUser loads a single account.
func (s *Service) GetUser(ctx context.Context, id primitive.ObjectID) (*authModels.User, error) {
	var user authModels.User
	err := s.usersCol().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// CreateUser registers a new account with a bcrypt password hash.
func (s *Service) CreateUser(ctx context.Context, email, name, password string, role permissions.Role) (*authModels.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := authModels.User{
		Email:             email,
		Name:              name,
		PasswordHash:      string(hash),
		Role:              role,
		Permissions:       map[string]bool{},
		DirectPermissions: []primitive.ObjectID{},
		PermissionGroups:  []primitive.ObjectID{},
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result, err := s.usersCol().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// UpdateUser applies a partial profile update.
func (s *Service) UpdateUser(ctx context.Context, id primitive.ObjectID, name *string, role *permissions.Role, active *bool) (*authModels.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
	}
	if role != nil {
		set["role"] = *role
	}
	if active != nil {
		set["active"] = *active
	}

	var user authModels.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.usersCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// DeleteUser removes the account and detaches it from every group.
func (s *Service) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.usersCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}

	if _, err := s.mongodb.Collection("permission_groups").UpdateMany(ctx,
		bson.M{"members": id},
		bson.M{"$pull": bson.M{"members": id}},
	); err != nil {
		return fmt.Errorf("failed to detach user from groups: %w", err)
	}

	return nil
}

// UpdateUserPermissions merges flag updates key-locally, optionally
// replaces the direct permission set, persists, and fans the flag diff
// out on the side-channel. Publish failure never rolls the write back.
func (s *Service) UpdateUserPermissions(ctx context.Context, id primitive.ObjectID, flagUpdates map[string]bool, directPermissions []primitive.ObjectID) (*authModels.User, []permissions.FlagChange, error) {
	if err := permissions.ValidateFlags(flagUpdates); err != nil {
		return nil, nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	merged, changes := permissions.MergeFlags(user.Permissions, flagUpdates)

	set := bson.M{
		"permissions": merged,
		"updated_at":  time.Now().UTC(),
	}
	if directPermissions != nil {
		set["direct_permissions"] = directPermissions
	}

	var updated authModels.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.usersCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to update user permissions: %w", err)
	}

	if len(changes) > 0 {
		s.announcePermissionUpdate(ctx, &updated, changes)
	}

	return &updated, changes, nil
}

// EffectivePermissions resolves and flattens the user's grants.
func (s *Service) EffectivePermissions(ctx context.Context, id primitive.ObjectID) (permissions.EffectiveSet, error) {
	authUser, err := s.principals.Load(ctx, id)
	if err != nil {
		if errors.Is(err, authServices.ErrPrincipalNotFound) {
			return permissions.EffectiveSet{}, ErrUserNotFound
		}
		return permissions.EffectiveSet{}, fmt.Errorf("failed to resolve effective permissions: %w", err)
	}
	return permissions.EffectivePermissions(authUser.Principal), nil
}

// announcePermissionUpdate pushes the flag diff to the affected user and
// stores a notification. Best effort on both legs.
func (s *Service) announcePermissionUpdate(ctx context.Context, user *authModels.User, changes []permissions.FlagChange) {
	if s.publisher != nil {
		payload := map[string]any{
			"user_id": user.ID.Hex(),
			"changes": changes,
		}
		if err := s.publisher.PublishTo(ctx, user.ID.Hex(), "permission_update", payload); err != nil {
			slog.Warn("Failed to publish permission update", "user_id", user.ID.Hex(), "error", err.Error())
		}
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, user.ID, "Permissions updated",
			fmt.Sprintf("%d of your permissions changed", len(changes)))
	}
}
