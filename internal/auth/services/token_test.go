package services

import (
	"testing"

	"go-staffhub/internal/auth/models"
	"go-staffhub/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService()

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "jane@example.com",
		Role:  permissions.RoleHR,
	}

	token, err := ts.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "hr", claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	ts := NewTokenService()

	_, err := ts.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := &TokenService{secret: []byte("other-secret")}
	validator := NewTokenService()

	token, err := issuer.IssueToken(&models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}
