package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InconsistencyError reports a partial membership write: one side of the
// denormalized pair was updated and the other failed. The repair hint
// names the side that still needs the fix.
type InconsistencyError struct {
	GroupID primitive.ObjectID
	UserID  primitive.ObjectID
	Side    string // "user" or "group"
	Err     error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("membership write inconsistent: %s side failed for user %s in group %s: %v",
		e.Side, e.UserID.Hex(), e.GroupID.Hex(), e.Err)
}

func (e *InconsistencyError) Unwrap() error {
	return e.Err
}

// AddMember links a user into a group on both sides of the denormalized
// relation. Idempotent: adding an existing member changes nothing.
func (s *Service) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.verifyUserExists(ctx, userID); err != nil {
		return err
	}

	if _, err := s.groupsCol().UpdateOne(ctx,
		bson.M{"_id": groupID},
		bson.M{"$addToSet": bson.M{"members": userID}},
	); err != nil {
		return fmt.Errorf("failed to add member to group: %w", err)
	}

	if _, err := s.usersCol().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"permission_groups": groupID}},
	); err != nil {
		return &InconsistencyError{GroupID: groupID, UserID: userID, Side: "user", Err: err}
	}

	return nil
}

// RemoveMember unlinks a user from a group on both sides. Idempotent:
// removing a non-member changes nothing.
func (s *Service) RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.verifyUserExists(ctx, userID); err != nil {
		return err
	}

	if _, err := s.groupsCol().UpdateOne(ctx,
		bson.M{"_id": groupID},
		bson.M{"$pull": bson.M{"members": userID}},
	); err != nil {
		return fmt.Errorf("failed to remove member from group: %w", err)
	}

	if _, err := s.usersCol().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"permission_groups": groupID}},
	); err != nil {
		return &InconsistencyError{GroupID: groupID, UserID: userID, Side: "user", Err: err}
	}

	return nil
}

func (s *Service) verifyUserExists(ctx context.Context, userID primitive.ObjectID) error {
	count, err := s.usersCol().CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
