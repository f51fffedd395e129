package services

import (
	"context"
	"fmt"
	"testing"

	authModels "go-staffhub/internal/auth/models"
	authServices "go-staffhub/internal/auth/services"
	"go-staffhub/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type capturedPublish struct {
	userID  string
	event   string
	payload any
}

type fakePublisher struct {
	published []capturedPublish
	fail      error
}

func (f *fakePublisher) PublishTo(ctx context.Context, userID, event string, payload any) error {
	if f.fail != nil {
		return f.fail
	}
	f.published = append(f.published, capturedPublish{userID: userID, event: event, payload: payload})
	return nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) Notify(ctx context.Context, userID primitive.ObjectID, title, body string) {
	f.notified = append(f.notified, title)
}

func TestAnnouncePermissionUpdate(t *testing.T) {
	pub := &fakePublisher{}
	notif := &fakeNotifier{}
	s := &Service{publisher: pub, notifier: notif}

	user := &authModels.User{ID: primitive.NewObjectID()}
	changes := []permissions.FlagChange{
		{Name: "viewEmployees", OldValue: false, NewValue: true},
	}

	s.announcePermissionUpdate(context.Background(), user, changes)

	require.Len(t, pub.published, 1)
	assert.Equal(t, user.ID.Hex(), pub.published[0].userID)
	assert.Equal(t, "permission_update", pub.published[0].event)

	payload, ok := pub.published[0].payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.ID.Hex(), payload["user_id"])
	assert.Equal(t, changes, payload["changes"])

	require.Len(t, notif.notified, 1)
	assert.Equal(t, "Permissions updated", notif.notified[0])
}

func TestAnnouncePermissionUpdate_PublishFailureIsSwallowed(t *testing.T) {
	pub := &fakePublisher{fail: assert.AnError}
	notif := &fakeNotifier{}
	s := &Service{publisher: pub, notifier: notif}

	user := &authModels.User{ID: primitive.NewObjectID()}

	// Must not panic or surface the error; the notification still lands
	s.announcePermissionUpdate(context.Background(), user, []permissions.FlagChange{
		{Name: "manageUsers", OldValue: true, NewValue: false},
	})

	assert.Len(t, notif.notified, 1)
}

func TestAnnouncePermissionUpdate_NoSideChannelsWired(t *testing.T) {
	s := &Service{}

	// Nil publisher and notifier are tolerated
	s.announcePermissionUpdate(context.Background(), &authModels.User{ID: primitive.NewObjectID()}, nil)
}

type fakePrincipalSource struct {
	user *authModels.AuthenticatedUser
	err  error
}

func (f *fakePrincipalSource) Load(ctx context.Context, userID primitive.ObjectID) (*authModels.AuthenticatedUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestEffectivePermissionsMissingUser(t *testing.T) {
	id := primitive.NewObjectID()
	s := &Service{principals: &fakePrincipalSource{
		err: fmt.Errorf("%w: %s", authServices.ErrPrincipalNotFound, id.Hex()),
	}}

	_, err := s.EffectivePermissions(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEffectivePermissionsStorageFailure(t *testing.T) {
	s := &Service{principals: &fakePrincipalSource{err: assert.AnError}}

	// A resolution outage is not a missing user
	_, err := s.EffectivePermissions(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEffectivePermissionsResolves(t *testing.T) {
	id := primitive.NewObjectID()
	s := &Service{principals: &fakePrincipalSource{
		user: &authModels.AuthenticatedUser{
			UserID: id,
			Principal: &permissions.Principal{
				UserID: id.Hex(),
				Role:   permissions.RoleEmployee,
				Flags:  map[string]bool{"viewEmployees": true},
			},
		},
	}}

	set, err := s.EffectivePermissions(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, set.Flags["viewEmployees"])
}
