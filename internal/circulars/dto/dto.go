package dto

import (
	"time"
)

// CircularOutput is the wire shape of a circular
type CircularOutput struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"author_id"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListCircularsInput lists circulars
type ListCircularsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// ListCircularsOutput wraps the listing
type ListCircularsOutput struct {
	Body struct {
		Circulars []CircularOutput `json:"circulars"`
		Total     int              `json:"total"`
	}
}

// GetCircularInput fetches one circular
type GetCircularInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	CircularID    string `path:"circular_id" required:"true" description:"Circular document id"`
}

// CircularOutputWrapper wraps a single circular
type CircularOutputWrapper struct {
	Body CircularOutput `json:"body"`
}

// CreateCircularInput stores a new draft
type CreateCircularInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		Title string `json:"title" minLength:"1" maxLength:"200" required:"true"`
		Body  string `json:"body" minLength:"1" maxLength:"20000" required:"true"`
	}
}

// UpdateCircularInput edits a circular's title or body
type UpdateCircularInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	CircularID    string `path:"circular_id" required:"true" description:"Circular document id"`
	Body          struct {
		Title *string `json:"title,omitempty" maxLength:"200"`
		Body  *string `json:"body,omitempty" maxLength:"20000"`
	}
}

// DeleteCircularInput removes a circular
type DeleteCircularInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	CircularID    string `path:"circular_id" required:"true" description:"Circular document id"`
}

// PublishCircularInput publishes a draft
type PublishCircularInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	CircularID    string `path:"circular_id" required:"true" description:"Circular document id"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
