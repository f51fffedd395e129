package routes

import (
	"context"

	"go-staffhub/internal/auth/dto"
	"go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/auth/models"
	"go-staffhub/internal/auth/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
)

// Routes exposes the authentication endpoints on the unified API
type Routes struct {
	authService *services.AuthService
	gate        *middleware.Gate
}

func NewRoutes(authService *services.AuthService, gate *middleware.Gate) *Routes {
	return &Routes{
		authService: authService,
		gate:        gate,
	}
}

// RegisterUnifiedRoutes registers all auth routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      "POST",
		Path:        "/auth/login",
		Summary:     "Login with email and password",
		Tags:        []string{"Auth"},
	}, hr.login)

	huma.Register(api, huma.Operation{
		OperationID: "auth-logout",
		Method:      "POST",
		Path:        "/auth/logout",
		Summary:     "Clear the session cookie",
		Tags:        []string{"Auth"},
	}, hr.logout)

	huma.Register(api, huma.Operation{
		OperationID: "auth-me",
		Method:      "GET",
		Path:        "/auth/me",
		Summary:     "Current user profile and effective permissions",
		Tags:        []string{"Auth"},
	}, hr.me)

	huma.Register(api, huma.Operation{
		OperationID: "auth-change-password",
		Method:      "POST",
		Path:        "/auth/password",
		Summary:     "Change the current user's password",
		Tags:        []string{"Auth"},
	}, hr.changePassword)
}

func (hr *Routes) login(ctx context.Context, input *dto.LoginInput) (*dto.LoginOutput, error) {
	user, token, err := hr.authService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return nil, huma.Error401Unauthorized(err.Error())
		}
		return nil, huma.Error500InternalServerError("Login failed", err)
	}

	return &dto.LoginOutput{
		SetCookie: middleware.CreateAuthCookieHeader(token),
		Body: dto.LoginResponse{
			User:  userInfo(user),
			Token: token,
		},
	}, nil
}

func (hr *Routes) logout(ctx context.Context, input *dto.LogoutInput) (*dto.LogoutOutput, error) {
	// Logout succeeds regardless of token validity
	return &dto.LogoutOutput{
		SetCookie: middleware.CreateClearCookieHeader(),
		Body:      dto.LogoutResponse{Message: "Logged out"},
	}, nil
}

func (hr *Routes) me(ctx context.Context, input *dto.MeInput) (*dto.MeOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	set := permissions.EffectivePermissions(user.Principal)

	groups := make([]string, 0, len(user.Principal.Groups))
	for _, g := range user.Principal.Groups {
		groups = append(groups, g.Name)
	}

	return &dto.MeOutput{
		Body: dto.MeResponse{
			User: dto.UserInfo{
				UserID: user.UserID.Hex(),
				Email:  user.Email,
				Name:   user.Name,
				Role:   string(user.Principal.Role),
			},
			Flags:         set.Flags,
			PermissionIDs: set.PermissionIDs,
			Groups:        groups,
		},
	}, nil
}

func (hr *Routes) changePassword(ctx context.Context, input *dto.ChangePasswordInput) (*dto.ChangePasswordOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	if err := hr.authService.ChangePassword(ctx, user.UserID, input.Body.CurrentPassword, input.Body.NewPassword); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	return &dto.ChangePasswordOutput{
		Body: dto.LogoutResponse{Message: "Password updated"},
	}, nil
}

func userInfo(user *models.User) dto.UserInfo {
	return dto.UserInfo{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
