package dto

import (
	"time"

	"go-staffhub/pkg/permissions"
)

// UserOutput is the wire shape of an account
type UserOutput struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	Name              string          `json:"name"`
	Role              string          `json:"role"`
	Permissions       map[string]bool `json:"permissions"`
	DirectPermissions []string        `json:"direct_permissions"`
	PermissionGroups  []string        `json:"permission_groups"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ListUsersOutput wraps the account listing
type ListUsersOutput struct {
	Body struct {
		Users []UserOutput `json:"users"`
		Total int          `json:"total"`
	}
}

// GetUserOutput wraps a single account
type GetUserOutput struct {
	Body UserOutput `json:"body"`
}

// CreateUserOutput wraps a newly created account
type CreateUserOutput struct {
	Body UserOutput `json:"body"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// UpdatePermissionsResponse reports the persisted state and the diff
type UpdatePermissionsResponse struct {
	User    UserOutput               `json:"user"`
	Changes []permissions.FlagChange `json:"changes" description:"Flag diff, one entry per changed key"`
}

// UpdatePermissionsOutput wraps a permission update
type UpdatePermissionsOutput struct {
	Body UpdatePermissionsResponse `json:"body"`
}

// EffectivePermissionsResponse is the flattened grant snapshot
type EffectivePermissionsResponse struct {
	UserID        string          `json:"user_id"`
	Flags         map[string]bool `json:"permissions"`
	PermissionIDs []string        `json:"permission_ids"`
}

// EffectivePermissionsOutput wraps the effective set
type EffectivePermissionsOutput struct {
	Body EffectivePermissionsResponse `json:"body"`
}
