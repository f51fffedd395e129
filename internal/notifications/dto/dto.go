package dto

import (
	"time"
)

// ListNotificationsInput lists the current user's notifications
type ListNotificationsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UnreadOnly    bool   `query:"unread" description:"Only return unread notifications"`
	Limit         int    `query:"limit" minimum:"1" maximum:"200" default:"50" description:"Maximum records returned"`
}

// NotificationOutput is the wire shape of a notification
type NotificationOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotificationsOutput wraps the listing
type ListNotificationsOutput struct {
	Body struct {
		Notifications []NotificationOutput `json:"notifications"`
		Total         int                  `json:"total"`
	}
}

// MarkReadInput marks one notification as read
type MarkReadInput struct {
	Authorization  string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie         string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	NotificationID string `path:"notification_id" required:"true" description:"Notification document id"`
}

// MarkAllReadInput marks every notification as read
type MarkAllReadInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
