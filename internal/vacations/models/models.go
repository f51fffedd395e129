package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request status workflow: pending → approved | rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// VacationRequest is a leave request filed by a user.
type VacationRequest struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID  `bson:"user_id" json:"user_id"`
	StartDate    time.Time           `bson:"start_date" json:"start_date"`
	EndDate      time.Time           `bson:"end_date" json:"end_date"`
	Reason       string              `bson:"reason" json:"reason"`
	Status       string              `bson:"status" json:"status"`
	DecidedBy    *primitive.ObjectID `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
	DecidedAt    *time.Time          `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecisionNote string              `bson:"decision_note,omitempty" json:"decision_note,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
