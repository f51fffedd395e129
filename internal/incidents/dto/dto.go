package dto

import (
	"time"
)

// ListIncidentsInput lists incident reports
type ListIncidentsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	EmployeeID    string `query:"employee_id" description:"Scope to one employee"`
}

// IncidentOutput is the wire shape of an incident report
type IncidentOutput struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	OccurredAt  time.Time `json:"occurred_at"`
	ReportedBy  string    `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListIncidentsOutput wraps the listing
type ListIncidentsOutput struct {
	Body struct {
		Incidents []IncidentOutput `json:"incidents"`
		Total     int              `json:"total"`
	}
}

// GetIncidentInput fetches one incident
type GetIncidentInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	IncidentID    string `path:"incident_id" required:"true" description:"Incident document id"`
}

// IncidentOutputWrapper wraps a single incident
type IncidentOutputWrapper struct {
	Body IncidentOutput `json:"body"`
}

// CreateIncidentInput files an incident report
type CreateIncidentInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		EmployeeID  string    `json:"employee_id" required:"true" description:"Employee document id"`
		Title       string    `json:"title" minLength:"1" maxLength:"200" required:"true"`
		Description string    `json:"description" maxLength:"5000"`
		Severity    string    `json:"severity" enum:"low,medium,high,critical" default:"low"`
		OccurredAt  time.Time `json:"occurred_at" required:"true"`
	}
}

// UpdateIncidentInput partially updates an incident report
type UpdateIncidentInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	IncidentID    string `path:"incident_id" required:"true" description:"Incident document id"`
	Body          struct {
		Title       *string    `json:"title,omitempty" maxLength:"200"`
		Description *string    `json:"description,omitempty" maxLength:"5000"`
		Severity    *string    `json:"severity,omitempty" enum:"low,medium,high,critical"`
		OccurredAt  *time.Time `json:"occurred_at,omitempty"`
	}
}

// DeleteIncidentInput removes an incident report
type DeleteIncidentInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	IncidentID    string `path:"incident_id" required:"true" description:"Incident document id"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
