package routes

import (
	"context"
	"errors"
	"fmt"

	authMiddleware "go-staffhub/internal/auth/middleware"
	authModels "go-staffhub/internal/auth/models"
	"go-staffhub/internal/users/dto"
	"go-staffhub/internal/users/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditRecorder records admin mutations; the audit module provides it.
type AuditRecorder interface {
	Record(ctx context.Context, actorID, action, entity string)
}

// Routes exposes the user administration surface
type Routes struct {
	service *services.Service
	gate    *authMiddleware.Gate
	audit   AuditRecorder
}

func NewRoutes(service *services.Service, gate *authMiddleware.Gate, audit AuditRecorder) *Routes {
	return &Routes{
		service: service,
		gate:    gate,
		audit:   audit,
	}
}

// RegisterUnifiedRoutes registers all user routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/users", hr.listUsers)
	huma.Post(api, "/users", hr.createUser)
	huma.Get(api, "/users/{user_id}", hr.getUser)
	huma.Patch(api, "/users/{user_id}", hr.updateUser)
	huma.Delete(api, "/users/{user_id}", hr.deleteUser)
	huma.Put(api, "/users/{user_id}/permissions", hr.updateUserPermissions)
	huma.Get(api, "/users/{user_id}/permissions", hr.getUserPermissions)
}

func (hr *Routes) listUsers(ctx context.Context, input *dto.ListUsersInput) (*dto.ListUsersOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	users, err := hr.service.ListUsers(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users", err)
	}

	out := &dto.ListUsersOutput{}
	out.Body.Users = make([]dto.UserOutput, len(users))
	for i, u := range users {
		out.Body.Users[i] = userOutput(&u)
	}
	out.Body.Total = len(users)
	return out, nil
}

func (hr *Routes) createUser(ctx context.Context, input *dto.CreateUserInput) (*dto.CreateUserOutput, error) {
	actor, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	role := permissions.Role(input.Body.Role)
	if role == "" {
		role = permissions.RoleEmployee
	}
	if !permissions.IsValidRole(role) {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("invalid role: %s", input.Body.Role))
	}

	user, err := hr.service.CreateUser(ctx, input.Body.Email, input.Body.Name, input.Body.Password, role)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return nil, huma.Error409Conflict(fmt.Sprintf("email %q already registered", input.Body.Email))
		}
		return nil, huma.Error500InternalServerError("Failed to create user", err)
	}

	hr.record(ctx, actor, "user.create", user.Email)
	return &dto.CreateUserOutput{Body: userOutput(user)}, nil
}

func (hr *Routes) getUser(ctx context.Context, input *dto.GetUserInput) (*dto.GetUserOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	user, err := hr.service.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load user", err)
	}

	return &dto.GetUserOutput{Body: userOutput(user)}, nil
}

func (hr *Routes) updateUser(ctx context.Context, input *dto.UpdateUserInput) (*dto.GetUserOutput, error) {
	actor, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	var role *permissions.Role
	if input.Body.Role != nil {
		r := permissions.Role(*input.Body.Role)
		if !permissions.IsValidRole(r) {
			return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("invalid role: %s", *input.Body.Role))
		}
		role = &r
	}

	user, err := hr.service.UpdateUser(ctx, id, input.Body.Name, role, input.Body.Active)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update user", err)
	}

	hr.record(ctx, actor, "user.update", user.Email)
	return &dto.GetUserOutput{Body: userOutput(user)}, nil
}

func (hr *Routes) deleteUser(ctx context.Context, input *dto.DeleteUserInput) (*dto.MessageOutput, error) {
	actor, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	if actor.UserID == id {
		return nil, huma.Error422UnprocessableEntity("cannot delete your own account")
	}

	if err := hr.service.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete user", err)
	}

	hr.record(ctx, actor, "user.delete", input.UserID)
	out := &dto.MessageOutput{}
	out.Body.Message = "User deleted"
	return out, nil
}

func (hr *Routes) updateUserPermissions(ctx context.Context, input *dto.UpdateUserPermissionsInput) (*dto.UpdatePermissionsOutput, error) {
	actor, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyUsersManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	var direct []primitive.ObjectID
	if input.Body.DirectPermissions != nil {
		direct = make([]primitive.ObjectID, len(input.Body.DirectPermissions))
		for i, h := range input.Body.DirectPermissions {
			pid, err := primitive.ObjectIDFromHex(h)
			if err != nil {
				return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("invalid permission id: %s", h))
			}
			direct[i] = pid
		}
	}

	user, changes, err := hr.service.UpdateUserPermissions(ctx, id, input.Body.Permissions, direct)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return nil, huma.Error404NotFound("user not found")
		case permissions.IsUnknownFlagError(err):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("Failed to update permissions", err)
		}
	}

	hr.record(ctx, actor, "user.permissions.update", input.UserID)

	if changes == nil {
		changes = []permissions.FlagChange{}
	}
	return &dto.UpdatePermissionsOutput{
		Body: dto.UpdatePermissionsResponse{
			User:    userOutput(user),
			Changes: changes,
		},
	}, nil
}

func (hr *Routes) getUserPermissions(ctx context.Context, input *dto.GetUserPermissionsInput) (*dto.EffectivePermissionsOutput, error) {
	actor, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	// Users may read their own effective set; anyone else's needs users.manage
	if actor.UserID != id && !permissions.IsGranted(actor.Principal, permissions.KeyUsersManage) {
		return nil, huma.Error403Forbidden(fmt.Sprintf("missing required permission: %s", permissions.KeyUsersManage))
	}

	set, err := hr.service.EffectivePermissions(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.Error500InternalServerError("Failed to resolve permissions", err)
	}

	return &dto.EffectivePermissionsOutput{
		Body: dto.EffectivePermissionsResponse{
			UserID:        input.UserID,
			Flags:         set.Flags,
			PermissionIDs: set.PermissionIDs,
		},
	}, nil
}

func (hr *Routes) record(ctx context.Context, actor *authModels.AuthenticatedUser, action, entity string) {
	if hr.audit != nil {
		hr.audit.Record(ctx, actor.UserID.Hex(), action, entity)
	}
}

func userOutput(u *authModels.User) dto.UserOutput {
	direct := make([]string, len(u.DirectPermissions))
	for i, id := range u.DirectPermissions {
		direct[i] = id.Hex()
	}
	groups := make([]string, len(u.PermissionGroups))
	for i, id := range u.PermissionGroups {
		groups[i] = id.Hex()
	}
	flags := u.Permissions
	if flags == nil {
		flags = map[string]bool{}
	}
	return dto.UserOutput{
		ID:                u.ID.Hex(),
		Email:             u.Email,
		Name:              u.Name,
		Role:              string(u.Role),
		Permissions:       flags,
		DirectPermissions: direct,
		PermissionGroups:  groups,
		Active:            u.Active,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
