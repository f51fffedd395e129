package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PermissionDoc is a registry entry in the permissions collection.
type PermissionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key         string             `bson:"key" json:"key"`
	Label       string             `bson:"label" json:"label"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// PermissionGroup is a named bundle of permissions with a denormalized
// member list. The member list and each member's permission_groups array
// are kept symmetric; only AddMember/RemoveMember touch either side.
type PermissionGroup struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Permissions []primitive.ObjectID `bson:"permissions" json:"permissions"`
	Members     []primitive.ObjectID `bson:"members" json:"members"`
	CreatedBy   *primitive.ObjectID  `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}
