package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Circular is a company-wide announcement. Drafts are only visible to
// managers; publishing makes the circular visible to everyone and fans
// out a notification.
type Circular struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Body        string             `bson:"body" json:"body"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	Published   bool               `bson:"published" json:"published"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
