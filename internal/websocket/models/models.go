package models

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeDeadline = 10 * time.Second

// Event names carried in websocket messages.
const (
	EventPermissionUpdate = "permission_update"
	EventNotification     = "notification"
	EventChatMessage      = "chat_message"
	EventSystem           = "system"
	EventHeartbeat        = "heartbeat"
)

// Message is the wire frame pushed to connected clients.
type Message struct {
	Event     string    `json:"event"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RedisEnvelope wraps a message for cross-instance fan-out. ServerID lets
// each instance drop its own publications.
type RedisEnvelope struct {
	ServerID string  `json:"server_id"`
	UserID   string  `json:"user_id,omitempty"`
	Message  Message `json:"message"`
}

// Connection is one registered websocket session.
type Connection struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Conn      *websocket.Conn `json:"-"`
	CreatedAt time.Time       `json:"created_at"`

	// writeMu serializes writers: gorilla/websocket allows at most one
	// concurrent writer per connection.
	writeMu sync.Mutex

	mu       sync.Mutex
	lastPing time.Time
}

// WriteMessage writes a frame to the underlying socket. All writers
// (fan-out, pings, heartbeat echoes) must go through here.
func (c *Connection) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
		return err
	}
	return c.Conn.WriteMessage(messageType, data)
}

// Touch records ping activity.
func (c *Connection) Touch() {
	c.mu.Lock()
	c.lastPing = time.Now()
	c.mu.Unlock()
}

// IsAlive reports whether the connection pinged within the window.
func (c *Connection) IsAlive(window time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.lastPing) < window
}

// LastPing returns the time of the most recent ping.
func (c *Connection) LastPing() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPing
}
