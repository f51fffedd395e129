package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Severity values for incident reports.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident is a disciplinary or workplace incident report tied to an
// employee record.
type Incident struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID  primitive.ObjectID `bson:"employee_id" json:"employee_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Severity    string             `bson:"severity" json:"severity"`
	OccurredAt  time.Time          `bson:"occurred_at" json:"occurred_at"`
	ReportedBy  primitive.ObjectID `bson:"reported_by" json:"reported_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
