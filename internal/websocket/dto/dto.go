package dto

import (
	"time"
)

// StatusInput requests hub status
type StatusInput struct{}

// StatusOutput reports hub health
type StatusOutput struct {
	Body struct {
		Status            string `json:"status"`
		ActiveConnections int    `json:"active_connections"`
	}
}

// ListConnectionsInput lists live connections (admin)
type ListConnectionsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// ConnectionInfo is the wire shape of a live connection
type ConnectionInfo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	LastPing  time.Time `json:"last_ping"`
}

// ListConnectionsOutput wraps the connection listing
type ListConnectionsOutput struct {
	Body struct {
		Connections []ConnectionInfo `json:"connections"`
		Total       int              `json:"total"`
	}
}

// BroadcastInput pushes a system event to all connected clients (admin)
type BroadcastInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		Event string `json:"event" minLength:"1" required:"true" description:"Event name"`
		Data  any    `json:"data,omitempty" description:"Event payload"`
	}
}

// BroadcastOutput confirms a broadcast
type BroadcastOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
