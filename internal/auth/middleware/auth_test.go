package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go-staffhub/internal/auth/models"
	"go-staffhub/internal/auth/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type staticPrincipalSource struct {
	user *models.AuthenticatedUser
	err  error
}

func (s *staticPrincipalSource) Load(ctx context.Context, userID primitive.ObjectID) (*models.AuthenticatedUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

// A token for a deleted account is an auth failure; a storage outage during
// principal resolution is not and must surface as a server error.
func TestRequireAuthPrincipalLoadErrors(t *testing.T) {
	tokens := services.NewTokenService()
	userID := primitive.NewObjectID()
	token, err := tokens.IssueToken(&models.User{
		ID:    userID,
		Email: "worker@example.com",
		Role:  permissions.RoleEmployee,
	})
	require.NoError(t, err)
	header := "Bearer " + token

	t.Run("unknown account maps to 401", func(t *testing.T) {
		source := &staticPrincipalSource{
			err: fmt.Errorf("%w: %s", services.ErrPrincipalNotFound, userID.Hex()),
		}
		_, err := NewGate(tokens, source).RequireAuth(context.Background(), header, "")
		require.Error(t, err)

		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 401, statusErr.GetStatus())
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		source := &staticPrincipalSource{err: errors.New("connection reset by peer")}
		_, err := NewGate(tokens, source).RequireAuth(context.Background(), header, "")
		require.Error(t, err)

		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 500, statusErr.GetStatus())
	})

	t.Run("resolved principal passes through", func(t *testing.T) {
		source := &staticPrincipalSource{
			user: &models.AuthenticatedUser{
				UserID: userID,
				Email:  "worker@example.com",
				Principal: &permissions.Principal{
					UserID: userID.Hex(),
					Role:   permissions.RoleEmployee,
				},
			},
		}
		user, err := NewGate(tokens, source).RequireAuth(context.Background(), header, "")
		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
	})
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		cookieHeader string
		want         string
	}{
		{
			name:       "bearer header",
			authHeader: "Bearer abc.def.ghi",
			want:       "abc.def.ghi",
		},
		{
			name:         "auth cookie",
			cookieHeader: "staffhub_auth_token=tok123",
			want:         "tok123",
		},
		{
			name:         "auth cookie among others",
			cookieHeader: "theme=dark; staffhub_auth_token=tok123; lang=en",
			want:         "tok123",
		},
		{
			name:         "header wins over cookie",
			authHeader:   "Bearer fromheader",
			cookieHeader: "staffhub_auth_token=fromcookie",
			want:         "fromheader",
		},
		{
			name:       "non-bearer header ignored",
			authHeader: "Basic dXNlcjpwYXNz",
			want:       "",
		},
		{
			name:         "unrelated cookies ignored",
			cookieHeader: "theme=dark; lang=en",
			want:         "",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractToken(tt.authHeader, tt.cookieHeader))
		})
	}
}

func TestCreateAuthCookieHeader(t *testing.T) {
	header := CreateAuthCookieHeader("tok123")

	assert.True(t, strings.HasPrefix(header, "staffhub_auth_token=tok123; Path=/"))
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Max-Age=86400")
}

func TestCreateClearCookieHeader(t *testing.T) {
	header := CreateClearCookieHeader()

	assert.True(t, strings.HasPrefix(header, "staffhub_auth_token=; Path=/"))
	assert.Contains(t, header, "Max-Age=0")
}
