package models

import (
	"time"

	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document backing authentication and authorization.
type User struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email             string               `bson:"email" json:"email"`
	Name              string               `bson:"name" json:"name"`
	PasswordHash      string               `bson:"password_hash" json:"-"`
	Role              permissions.Role     `bson:"role" json:"role"`
	Permissions       map[string]bool      `bson:"permissions" json:"permissions"`
	DirectPermissions []primitive.ObjectID `bson:"direct_permissions" json:"direct_permissions"`
	PermissionGroups  []primitive.ObjectID `bson:"permission_groups" json:"permission_groups"`
	EmployeeID        *primitive.ObjectID  `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	Active            bool                 `bson:"active" json:"active"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `bson:"updated_at" json:"updated_at"`
}

// AuthenticatedUser pairs the account identity with the fully loaded
// principal snapshot the resolver operates on.
type AuthenticatedUser struct {
	UserID    primitive.ObjectID
	Email     string
	Name      string
	Principal *permissions.Principal
}

// Claims carried inside the staffhub JWT.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
