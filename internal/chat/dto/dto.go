package dto

import (
	"time"
)

// MessageOutput is the wire shape of a direct message
type MessageOutput struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationInput lists messages exchanged with another user
type ConversationInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"The other participant's user id"`
	Limit         int    `query:"limit" minimum:"1" maximum:"500" description:"Maximum messages to return"`
}

// ConversationOutput wraps the conversation listing
type ConversationOutput struct {
	Body struct {
		Messages []MessageOutput `json:"messages"`
		Total    int             `json:"total"`
	}
}

// SendMessageInput sends a direct message
type SendMessageInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	UserID        string `path:"user_id" required:"true" description:"Recipient user id"`
	Body          struct {
		Body string `json:"body" minLength:"1" maxLength:"4000" required:"true" description:"Message text"`
	}
}

// SendMessageOutput wraps the stored message
type SendMessageOutput struct {
	Body MessageOutput `json:"body"`
}
