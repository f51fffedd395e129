package permissions

import "time"

// Role is the coarse access level carried by every user account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleViewer   Role = "viewer"
	RoleUser     Role = "user"
	RoleHR       Role = "hr"
	RoleFinance  Role = "finance"
)

// ValidRoles lists every role accepted on user records.
var ValidRoles = []Role{RoleAdmin, RoleEmployee, RoleViewer, RoleUser, RoleHR, RoleFinance}

// IsValidRole reports whether r is a known role.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}

// Category groups permission keys for UI organization.
type Category string

const (
	CategoryView   Category = "view"
	CategoryCreate Category = "create"
	CategoryEdit   Category = "edit"
	CategoryDelete Category = "delete"
	CategoryManage Category = "manage"
	CategoryAdmin  Category = "admin"
)

// Permission is a named capability from the permission registry.
type Permission struct {
	ID          string    `bson:"-" json:"id"`
	Key         string    `bson:"key" json:"key"`
	Label       string    `bson:"label" json:"label"`
	Description string    `bson:"description" json:"description"`
	Category    Category  `bson:"category" json:"category"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// GroupGrant is the slice of a permission group the resolver needs: its
// identity and the permissions it carries, fully resolved.
type GroupGrant struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// Principal is a fully loaded snapshot of an authenticated user's
// authorization state. Groups and Direct must be populated before any
// check; an unpopulated principal yields false negatives, not errors.
type Principal struct {
	UserID string          `json:"user_id"`
	Role   Role            `json:"role"`
	Flags  map[string]bool `json:"flags"`
	Groups []GroupGrant    `json:"groups"`
	Direct []Permission    `json:"direct"`
}

// EffectiveSet is the aggregate a client renders permission-aware UI from.
type EffectiveSet struct {
	Flags         map[string]bool `json:"flags"`
	PermissionIDs []string        `json:"permission_ids"`
}

// FlagChange records a single boolean-flag transition for the
// permission_update side-channel event.
type FlagChange struct {
	Name     string `json:"name"`
	OldValue bool   `json:"old_value"`
	NewValue bool   `json:"new_value"`
}
