package dto

import (
	"time"
)

// ListAuditInput lists operation log entries (admin)
type ListAuditInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	ActorID       string `query:"actor_id" description:"Filter by acting user id"`
	Action        string `query:"action" description:"Filter by action name, e.g. group.create"`
	Limit         int    `query:"limit" minimum:"1" maximum:"500" default:"100" description:"Maximum records returned"`
}

// AuditEntryOutput is the wire shape of a log entry
type AuditEntryOutput struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	Timestamp time.Time `json:"timestamp"`
}

// ListAuditOutput wraps the listing
type ListAuditOutput struct {
	Body struct {
		Entries []AuditEntryOutput `json:"entries"`
		Total   int                `json:"total"`
	}
}
