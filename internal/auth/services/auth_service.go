package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-staffhub/internal/auth/models"
	"go-staffhub/pkg/config"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure so responses do
// not reveal whether the account exists.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// AuthService handles credential verification and session issuance.
type AuthService struct {
	mongodb      *database.MongoDB
	tokenService *TokenService
	principals   *PrincipalLoader
}

func NewAuthService(mongodb *database.MongoDB, tokenService *TokenService, principals *PrincipalLoader) *AuthService {
	return &AuthService{
		mongodb:      mongodb,
		tokenService: tokenService,
		principals:   principals,
	}
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.principals.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrPrincipalNotFound) {
			return nil, "", err
		}
		// Burn a comparison anyway to keep timing uniform
		bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv"), []byte(password))
		return nil, "", ErrInvalidCredentials
	}

	if !user.Active {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenService.IssueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// ChangePassword replaces the password of the given account after
// verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	user, err := s.principals.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.mongodb.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password_hash": string(hash), "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// CreateIndexes sets up the unique email index on the users collection.
func (s *AuthService) CreateIndexes(ctx context.Context) error {
	_, err := s.mongodb.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	return nil
}

// EnsureAdminAccount bootstraps the first admin user from ADMIN_EMAIL and
// ADMIN_PASSWORD when the users collection is empty. No-op otherwise.
func (s *AuthService) EnsureAdminAccount(ctx context.Context) error {
	count, err := s.mongodb.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := config.GetEnv("ADMIN_EMAIL", "")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		slog.Warn("Users collection is empty and ADMIN_EMAIL/ADMIN_PASSWORD are not set, skipping admin bootstrap")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := models.User{
		Email:             email,
		Name:              config.GetEnv("ADMIN_NAME", "Administrator"),
		PasswordHash:      string(hash),
		Role:              permissions.RoleAdmin,
		Permissions:       map[string]bool{},
		DirectPermissions: []primitive.ObjectID{},
		PermissionGroups:  []primitive.ObjectID{},
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := s.mongodb.Collection("users").InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	slog.Info("Bootstrapped initial admin account", "email", email)
	return nil
}
