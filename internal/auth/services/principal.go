package services

import (
	"context"
	"errors"
	"fmt"

	"go-staffhub/internal/auth/models"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPrincipalNotFound marks a lookup that found no matching user account.
// Callers use it to tell "no such user" apart from storage failures, which
// must surface as 500s rather than auth denials.
var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalLoader assembles the fully loaded authorization snapshot for a
// user: account flags plus group and direct permissions resolved to
// documents. Every request re-derives from this snapshot; there is no
// resolver-side cache.
type PrincipalLoader struct {
	mongodb *database.MongoDB
}

func NewPrincipalLoader(mongodb *database.MongoDB) *PrincipalLoader {
	return &PrincipalLoader{mongodb: mongodb}
}

type groupDoc struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Name        string               `bson:"name"`
	Permissions []primitive.ObjectID `bson:"permissions"`
}

// GetUser loads a user account by id.
func (pl *PrincipalLoader) GetUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := pl.mongodb.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrPrincipalNotFound, userID.Hex())
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail loads a user account by email address.
func (pl *PrincipalLoader) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := pl.mongodb.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrPrincipalNotFound, email)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Load builds the resolver snapshot for the given user id.
func (pl *PrincipalLoader) Load(ctx context.Context, userID primitive.ObjectID) (*models.AuthenticatedUser, error) {
	user, err := pl.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pl.LoadFromUser(ctx, user)
}

// LoadFromUser builds the resolver snapshot from an already fetched account.
func (pl *PrincipalLoader) LoadFromUser(ctx context.Context, user *models.User) (*models.AuthenticatedUser, error) {
	groups, err := pl.loadGroups(ctx, user.PermissionGroups)
	if err != nil {
		return nil, err
	}

	// Resolve every referenced permission id in one query
	idSet := make(map[primitive.ObjectID]struct{})
	for _, g := range groups {
		for _, id := range g.Permissions {
			idSet[id] = struct{}{}
		}
	}
	for _, id := range user.DirectPermissions {
		idSet[id] = struct{}{}
	}

	permsByID, err := pl.loadPermissions(ctx, idSet)
	if err != nil {
		return nil, err
	}

	principal := &permissions.Principal{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		Flags:  user.Permissions,
	}
	if principal.Flags == nil {
		principal.Flags = map[string]bool{}
	}

	for _, g := range groups {
		grant := permissions.GroupGrant{
			ID:   g.ID.Hex(),
			Name: g.Name,
		}
		for _, id := range g.Permissions {
			if perm, ok := permsByID[id]; ok {
				grant.Permissions = append(grant.Permissions, perm)
			}
		}
		principal.Groups = append(principal.Groups, grant)
	}

	for _, id := range user.DirectPermissions {
		if perm, ok := permsByID[id]; ok {
			principal.Direct = append(principal.Direct, perm)
		}
	}

	return &models.AuthenticatedUser{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Principal: principal,
	}, nil
}

func (pl *PrincipalLoader) loadGroups(ctx context.Context, groupIDs []primitive.ObjectID) ([]groupDoc, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	cursor, err := pl.mongodb.Collection("permission_groups").Find(ctx, bson.M{"_id": bson.M{"$in": groupIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to query permission groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []groupDoc
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode permission groups: %w", err)
	}

	return groups, nil
}

func (pl *PrincipalLoader) loadPermissions(ctx context.Context, idSet map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]permissions.Permission, error) {
	result := make(map[primitive.ObjectID]permissions.Permission, len(idSet))
	if len(idSet) == 0 {
		return result, nil
	}

	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	cursor, err := pl.mongodb.Collection("permissions").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer cursor.Close(ctx)

	type permDoc struct {
		ID                     primitive.ObjectID `bson:"_id"`
		permissions.Permission `bson:",inline"`
	}

	var docs []permDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	for _, doc := range docs {
		perm := doc.Permission
		perm.ID = doc.ID.Hex()
		result[doc.ID] = perm
	}

	return result, nil
}
