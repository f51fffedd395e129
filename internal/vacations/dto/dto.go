package dto

import (
	"time"
)

// ListVacationsInput lists vacation requests
type ListVacationsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Status        string `query:"status" enum:"pending,approved,rejected" description:"Filter by status"`
	All           bool   `query:"all" description:"List every user's requests (requires vacations.manage)"`
}

// VacationOutput is the wire shape of a request
type VacationOutput struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	DecidedBy    string     `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	DecisionNote string     `json:"decision_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ListVacationsOutput wraps the listing
type ListVacationsOutput struct {
	Body struct {
		Requests []VacationOutput `json:"requests"`
		Total    int              `json:"total"`
	}
}

// CreateVacationInput files a request
type CreateVacationInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		StartDate time.Time `json:"start_date" required:"true"`
		EndDate   time.Time `json:"end_date" required:"true"`
		Reason    string    `json:"reason" maxLength:"1000"`
	}
}

// VacationOutputWrapper wraps a single request
type VacationOutputWrapper struct {
	Body VacationOutput `json:"body"`
}

// DecideVacationInput approves or rejects a pending request
type DecideVacationInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	RequestID     string `path:"request_id" required:"true" description:"Vacation request document id"`
	Body          struct {
		Approve bool   `json:"approve" required:"true" description:"true approves, false rejects"`
		Note    string `json:"note" maxLength:"1000" description:"Optional decision note"`
	}
}

// CancelVacationInput cancels the caller's own pending request
type CancelVacationInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	RequestID     string `path:"request_id" required:"true" description:"Vacation request document id"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
