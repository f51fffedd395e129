package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	authModels "go-staffhub/internal/auth/models"
	"go-staffhub/internal/groups/dto"
	"go-staffhub/internal/groups/models"
	"go-staffhub/internal/groups/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditRecorder records admin mutations; the audit module provides it.
type AuditRecorder interface {
	Record(ctx context.Context, actorID, action, entity string)
}

// Routes exposes the permission registry and group admin surface
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

// RegisterUnifiedRoutes registers all groups routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	// Permission registry
	huma.Get(api, "/permissions", hr.listPermissions)
	huma.Post(api, "/permissions", hr.createPermission)
	huma.Get(api, "/permissions/{permission_id}", hr.getPermission)
	huma.Delete(api, "/permissions/{permission_id}", hr.deletePermission)

	// Groups
	huma.Get(api, "/groups", hr.listGroups)
	huma.Post(api, "/groups", hr.createGroup)
	huma.Get(api, "/groups/{group_id}", hr.getGroup)
	huma.Patch(api, "/groups/{group_id}", hr.updateGroup)
	huma.Delete(api, "/groups/{group_id}", hr.deleteGroup)

	// Membership
	huma.Post(api, "/groups/{group_id}/members", hr.addMember)
	huma.Delete(api, "/groups/{group_id}/members/{user_id}", hr.removeMember)
}

func (hr *Routes) listPermissions(ctx context.Context, input *dto.ListPermissionsInput) (*dto.ListPermissionsOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	perms, err := hr.service.ListPermissions(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list permissions", err)
	}

	out := &dto.ListPermissionsOutput{}
	out.Body.Permissions = make([]dto.PermissionOutput, len(perms))
	for i, p := range perms {
		out.Body.Permissions[i] = permissionOutput(p)
	}
	out.Body.Total = len(perms)
	return out, nil
}

func (hr *Routes) createPermission(ctx context.Context, input *dto.CreatePermissionInput) (*dto.CreatePermissionOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	perm, err := hr.service.CreatePermission(ctx, input.Body.Key, input.Body.Label, input.Body.Description, input.Body.Category)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateKey) {
			return nil, huma.Error409Conflict(fmt.Sprintf("permission key %q already exists", input.Body.Key))
		}
		return nil, huma.Error500InternalServerError("Failed to create permission", err)
	}

	hr.record(ctx, user, "permission.create", perm.Key)
	return &dto.CreatePermissionOutput{Body: permissionOutput(*perm)}, nil
}

func (hr *Routes) getPermission(ctx context.Context, input *dto.GetPermissionInput) (*dto.GetPermissionOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.PermissionID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid permission id")
	}

	perm, err := hr.service.GetPermission(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrPermissionNotFound) {
			return nil, huma.Error404NotFound("permission not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load permission", err)
	}

	return &dto.GetPermissionOutput{Body: permissionOutput(*perm)}, nil
}

func (hr *Routes) deletePermission(ctx context.Context, input *dto.DeletePermissionInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.PermissionID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid permission id")
	}

	if err := hr.service.DeletePermission(ctx, id); err != nil {
		if errors.Is(err, services.ErrPermissionNotFound) {
			return nil, huma.Error404NotFound("permission not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete permission", err)
	}

	hr.record(ctx, user, "permission.delete", input.PermissionID)
	return message("Permission deleted"), nil
}

func (hr *Routes) listGroups(ctx context.Context, input *dto.ListGroupsInput) (*dto.ListGroupsOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	groups, err := hr.service.ListGroups(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list groups", err)
	}

	out := &dto.ListGroupsOutput{}
	out.Body.Groups = make([]dto.GroupSummary, len(groups))
	for i, g := range groups {
		out.Body.Groups[i] = groupSummary(g)
	}
	out.Body.Total = len(groups)
	return out, nil
}

func (hr *Routes) createGroup(ctx context.Context, input *dto.CreateGroupInput) (*dto.GroupOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	permIDs, err := parseObjectIDs(input.Body.Permissions)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	group, err := hr.service.CreateGroup(ctx, input.Body.Name, input.Body.Description, permIDs, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateName):
			return nil, huma.Error409Conflict(fmt.Sprintf("group %q already exists", input.Body.Name))
		case errors.Is(err, services.ErrUnknownPermissions):
			return nil, huma.Error422UnprocessableEntity("one or more permission ids do not exist")
		default:
			return nil, huma.Error500InternalServerError("Failed to create group", err)
		}
	}

	hr.record(ctx, user, "group.create", group.Name)
	return &dto.GroupOutput{Body: groupSummary(*group)}, nil
}

func (hr *Routes) getGroup(ctx context.Context, input *dto.GetGroupInput) (*dto.GroupDetailOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.GroupID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid group id")
	}

	group, err := hr.service.GetGroup(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return nil, huma.Error404NotFound("group not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load group", err)
	}

	perms, members, err := hr.service.ResolveGroup(ctx, group)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to resolve group", err)
	}

	detail := dto.GroupDetail{
		ID:          group.ID.Hex(),
		Name:        group.Name,
		Description: group.Description,
		Permissions: make([]dto.PermissionOutput, len(perms)),
		Members:     make([]dto.GroupMember, len(members)),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
	for i, p := range perms {
		detail.Permissions[i] = permissionOutput(p)
	}
	for i, m := range members {
		detail.Members[i] = dto.GroupMember{UserID: m.ID.Hex(), Email: m.Email, Name: m.Name}
	}

	return &dto.GroupDetailOutput{Body: detail}, nil
}

func (hr *Routes) updateGroup(ctx context.Context, input *dto.UpdateGroupInput) (*dto.GroupOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.GroupID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid group id")
	}

	var permIDs []primitive.ObjectID
	if input.Body.Permissions != nil {
		permIDs, err = parseObjectIDs(input.Body.Permissions)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		if permIDs == nil {
			permIDs = []primitive.ObjectID{}
		}
	}

	group, err := hr.service.UpdateGroup(ctx, id, input.Body.Name, input.Body.Description, permIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			return nil, huma.Error404NotFound("group not found")
		case errors.Is(err, services.ErrDuplicateName):
			return nil, huma.Error409Conflict("group name already exists")
		case errors.Is(err, services.ErrUnknownPermissions):
			return nil, huma.Error422UnprocessableEntity("one or more permission ids do not exist")
		default:
			return nil, huma.Error500InternalServerError("Failed to update group", err)
		}
	}

	hr.record(ctx, user, "group.update", group.Name)
	return &dto.GroupOutput{Body: groupSummary(*group)}, nil
}

func (hr *Routes) deleteGroup(ctx context.Context, input *dto.DeleteGroupInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.GroupID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid group id")
	}

	if err := hr.service.DeleteGroup(ctx, id); err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return nil, huma.Error404NotFound("group not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete group", err)
	}

	hr.record(ctx, user, "group.delete", input.GroupID)
	return message("Group deleted"), nil
}

func (hr *Routes) addMember(ctx context.Context, input *dto.AddMemberInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	groupID, err := primitive.ObjectIDFromHex(input.GroupID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid group id")
	}
	userID, err := primitive.ObjectIDFromHex(input.Body.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	if err := hr.service.AddMember(ctx, groupID, userID); err != nil {
		return nil, membershipError(err)
	}

	hr.record(ctx, user, "group.member.add", fmt.Sprintf("%s:%s", input.GroupID, input.Body.UserID))
	return message("Member added"), nil
}

func (hr *Routes) removeMember(ctx context.Context, input *dto.RemoveMemberInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyGroupsManage)
	if err != nil {
		return nil, err
	}

	groupID, err := primitive.ObjectIDFromHex(input.GroupID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid group id")
	}
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	if err := hr.service.RemoveMember(ctx, groupID, userID); err != nil {
		return nil, membershipError(err)
	}

	hr.record(ctx, user, "group.member.remove", fmt.Sprintf("%s:%s", input.GroupID, input.UserID))
	return message("Member removed"), nil
}

func message(text string) *dto.MessageOutput {
	out := &dto.MessageOutput{}
	out.Body.Message = text
	return out
}

func membershipError(err error) error {
	var inconsistency *services.InconsistencyError
	switch {
	case errors.Is(err, services.ErrGroupNotFound):
		return huma.Error404NotFound("group not found")
	case errors.Is(err, services.ErrUserNotFound):
		return huma.Error404NotFound("user not found")
	case errors.As(err, &inconsistency):
		slog.Error("Membership write left sides inconsistent",
			"group_id", inconsistency.GroupID.Hex(),
			"user_id", inconsistency.UserID.Hex(),
			"side", inconsistency.Side,
		)
		return huma.Error500InternalServerError(inconsistency.Error())
	default:
		return huma.Error500InternalServerError("Membership update failed", err)
	}
}

func (hr *Routes) record(ctx context.Context, user *authModels.AuthenticatedUser, action, entity string) {
	if hr.audit != nil {
		hr.audit.Record(ctx, user.UserID.Hex(), action, entity)
	}
}

func permissionOutput(p models.PermissionDoc) dto.PermissionOutput {
	return dto.PermissionOutput{
		ID:          p.ID.Hex(),
		Key:         p.Key,
		Label:       p.Label,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func groupSummary(g models.PermissionGroup) dto.GroupSummary {
	perms := make([]string, len(g.Permissions))
	for i, id := range g.Permissions {
		perms[i] = id.Hex()
	}
	return dto.GroupSummary{
		ID:          g.ID.Hex(),
		Name:        g.Name,
		Description: g.Description,
		Permissions: perms,
		MemberCount: len(g.Members),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	if len(hexes) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, len(hexes))
	for i, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid permission id: %s", h)
		}
		ids[i] = id
	}
	return ids, nil
}
