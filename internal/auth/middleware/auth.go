package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-staffhub/internal/auth/models"
	"go-staffhub/internal/auth/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthCookieName is the cookie carrying the staffhub session token.
const AuthCookieName = "staffhub_auth_token"

// PrincipalSource resolves a user id to a fully loaded principal snapshot.
// Satisfied by services.PrincipalLoader.
type PrincipalSource interface {
	Load(ctx context.Context, userID primitive.ObjectID) (*models.AuthenticatedUser, error)
}

// Gate is the single authorization chokepoint. Every protected operation
// calls one of its Require* methods with the raw Authorization and Cookie
// headers and gets back the authenticated user or a typed huma error.
type Gate struct {
	tokenService *services.TokenService
	principals   PrincipalSource
}

func NewGate(tokenService *services.TokenService, principals PrincipalSource) *Gate {
	return &Gate{
		tokenService: tokenService,
		principals:   principals,
	}
}

// RequireAuth validates the token and loads the full principal snapshot.
// Failures map to 401 without distinguishing missing from invalid tokens.
func (g *Gate) RequireAuth(ctx context.Context, authHeader, cookieHeader string) (*models.AuthenticatedUser, error) {
	// Fail-secure master timeout for the whole resolution
	loadCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	token := extractToken(authHeader, cookieHeader)
	if token == "" {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	claims, err := g.tokenService.ValidateToken(token)
	if err != nil {
		slog.Warn("Token validation failed", "error", err.Error())
		return nil, huma.Error401Unauthorized("authentication required")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	user, err := g.principals.Load(loadCtx, userID)
	if err != nil {
		// Only a confirmed missing account is an auth outcome; a storage
		// failure must not masquerade as one.
		if errors.Is(err, services.ErrPrincipalNotFound) {
			slog.Warn("Token references unknown user", "user_id", claims.UserID)
			return nil, huma.Error401Unauthorized("authentication required")
		}
		slog.Error("Principal resolution failed", "user_id", claims.UserID, "error", err.Error())
		return nil, huma.Error500InternalServerError("failed to resolve user")
	}

	return user, nil
}

// RequirePermission authenticates and then demands a single permission key.
func (g *Gate) RequirePermission(ctx context.Context, authHeader, cookieHeader, key string) (*models.AuthenticatedUser, error) {
	user, err := g.RequireAuth(ctx, authHeader, cookieHeader)
	if err != nil {
		return nil, err
	}

	if !permissions.IsGranted(user.Principal, key) {
		return nil, huma.Error403Forbidden(fmt.Sprintf("missing required permission: %s", key))
	}

	return user, nil
}

// RequireAnyPermission authenticates and then demands at least one of the keys.
func (g *Gate) RequireAnyPermission(ctx context.Context, authHeader, cookieHeader string, keys ...string) (*models.AuthenticatedUser, error) {
	user, err := g.RequireAuth(ctx, authHeader, cookieHeader)
	if err != nil {
		return nil, err
	}

	if !permissions.IsGrantedAny(user.Principal, keys) {
		return nil, huma.Error403Forbidden(fmt.Sprintf("missing required permission: one of %s", strings.Join(keys, ", ")))
	}

	return user, nil
}

// RequireRoles authenticates and then demands one of the listed roles.
// Coarse gate for admin-only surfaces; fine-grained checks use permissions.
func (g *Gate) RequireRoles(ctx context.Context, authHeader, cookieHeader string, roles ...permissions.Role) (*models.AuthenticatedUser, error) {
	user, err := g.RequireAuth(ctx, authHeader, cookieHeader)
	if err != nil {
		return nil, err
	}

	if !permissions.HasRole(user.Principal, roles...) {
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		return nil, huma.Error403Forbidden(fmt.Sprintf("requires role: %s", strings.Join(names, " or ")))
	}

	return user, nil
}

// extractToken pulls the JWT from the Authorization header or the
// staffhub auth cookie, header first.
func extractToken(authHeader, cookieHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookieHeader != "" {
		cookies := strings.Split(cookieHeader, ";")
		for _, cookie := range cookies {
			cookie = strings.TrimSpace(cookie)
			if strings.HasPrefix(cookie, AuthCookieName+"=") {
				return strings.TrimPrefix(cookie, AuthCookieName+"=")
			}
		}
	}

	return ""
}
