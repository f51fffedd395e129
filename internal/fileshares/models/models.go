package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileShare is the metadata record of an uploaded file. The bytes live
// on disk under the upload directory; StoredName is the on-disk name,
// Filename the name the uploader gave it.
type FileShare struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Filename    string               `bson:"filename" json:"filename"`
	StoredName  string               `bson:"stored_name" json:"-"`
	Size        int64                `bson:"size" json:"size"`
	ContentType string               `bson:"content_type" json:"content_type"`
	OwnerID     primitive.ObjectID   `bson:"owner_id" json:"owner_id"`
	SharedWith  []primitive.ObjectID `bson:"shared_with" json:"shared_with"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}

// AccessibleBy reports whether the user owns the file or is on its
// share list.
func (f *FileShare) AccessibleBy(userID primitive.ObjectID) bool {
	if f.OwnerID == userID {
		return true
	}
	for _, id := range f.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
