package dto

import (
	"time"
)

// PermissionOutput is the wire shape of a registry entry
type PermissionOutput struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListPermissionsOutput wraps the registry listing
type ListPermissionsOutput struct {
	Body struct {
		Permissions []PermissionOutput `json:"permissions"`
		Total       int                `json:"total"`
	}
}

// CreatePermissionOutput wraps a newly created registry entry
type CreatePermissionOutput struct {
	Body PermissionOutput `json:"body"`
}

// GetPermissionOutput wraps a single registry entry
type GetPermissionOutput struct {
	Body PermissionOutput `json:"body"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// GroupSummary is the wire shape of a group in listings
type GroupSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions" description:"Permission document ids"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupMember is a resolved member entry
type GroupMember struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// GroupDetail is a group with members and permissions resolved
type GroupDetail struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Permissions []PermissionOutput `json:"permissions"`
	Members     []GroupMember      `json:"members"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ListGroupsOutput wraps the group listing
type ListGroupsOutput struct {
	Body struct {
		Groups []GroupSummary `json:"groups"`
		Total  int            `json:"total"`
	}
}

// GroupOutput wraps a group summary
type GroupOutput struct {
	Body GroupSummary `json:"body"`
}

// GroupDetailOutput wraps a resolved group
type GroupDetailOutput struct {
	Body GroupDetail `json:"body"`
}
