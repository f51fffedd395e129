package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employment status values.
const (
	StatusActive   = "active"
	StatusOnLeave  = "on_leave"
	StatusInactive = "inactive"
)

// Employee is an HR personnel record, distinct from the login account.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName  string             `bson:"first_name" json:"first_name"`
	LastName   string             `bson:"last_name" json:"last_name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Position   string             `bson:"position" json:"position"`
	Department string             `bson:"department" json:"department"`
	SalaryBand string             `bson:"salary_band" json:"salary_band"`
	Status     string             `bson:"status" json:"status"`
	HiredAt    *time.Time         `bson:"hired_at,omitempty" json:"hired_at,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// FullName joins first and last name for display and export.
func (e *Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
