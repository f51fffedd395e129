package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go-staffhub/internal/websocket/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const staleConnectionWindow = 90 * time.Second

// ConnectionRegistry tracks live websocket sessions. It is the only
// holder of connection state; services that push events receive the
// registry explicitly rather than reaching for shared globals.
type ConnectionRegistry struct {
	mu          sync.RWMutex
	connections map[string]*models.Connection // connection id -> connection
	userConns   map[string][]string           // user id -> connection ids
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		connections: make(map[string]*models.Connection),
		userConns:   make(map[string][]string),
	}
}

// Register adds a session for the given user and returns its handle.
func (r *ConnectionRegistry) Register(userID string, conn *websocket.Conn) *models.Connection {
	connection := &models.Connection{
		ID:        uuid.New().String(),
		UserID:    userID,
		Conn:      conn,
		CreatedAt: time.Now(),
	}
	connection.Touch()

	r.mu.Lock()
	r.connections[connection.ID] = connection
	r.userConns[userID] = append(r.userConns[userID], connection.ID)
	r.mu.Unlock()

	slog.Info("WebSocket connection registered", "connection_id", connection.ID, "user_id", userID)
	return connection
}

// Unregister removes a session and closes its socket.
func (r *ConnectionRegistry) Unregister(connectionID string) error {
	r.mu.Lock()
	conn, exists := r.connections[connectionID]
	if !exists {
		r.mu.Unlock()
		return fmt.Errorf("connection not found: %s", connectionID)
	}

	ids := r.userConns[conn.UserID]
	remaining := ids[:0]
	for _, id := range ids {
		if id != connectionID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) > 0 {
		r.userConns[conn.UserID] = remaining
	} else {
		delete(r.userConns, conn.UserID)
	}
	delete(r.connections, connectionID)
	r.mu.Unlock()

	if conn.Conn != nil {
		conn.Conn.Close()
	}

	slog.Info("WebSocket connection unregistered", "connection_id", connectionID, "user_id", conn.UserID)
	return nil
}

// Lookup returns every live session for a user.
func (r *ConnectionRegistry) Lookup(userID string) []*models.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.userConns[userID]
	conns := make([]*models.Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := r.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	return conns
}

// All returns every live session.
func (r *ConnectionRegistry) All() []*models.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]*models.Connection, 0, len(r.connections))
	for _, conn := range r.connections {
		conns = append(conns, conn)
	}
	return conns
}

// Count returns the number of live sessions.
func (r *ConnectionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// SendToUser writes a message to every session of a user. Missing
// sessions are not an error; the caller treats delivery as best effort.
func (r *ConnectionRegistry) SendToUser(userID string, message *models.Message) int {
	delivered := 0
	for _, conn := range r.Lookup(userID) {
		if err := writeMessage(conn, message); err != nil {
			slog.Warn("Failed to deliver websocket message", "connection_id", conn.ID, "error", err.Error())
			continue
		}
		delivered++
	}
	return delivered
}

// Broadcast writes a message to every live session.
func (r *ConnectionRegistry) Broadcast(message *models.Message) {
	for _, conn := range r.All() {
		if err := writeMessage(conn, message); err != nil {
			slog.Warn("Failed to broadcast websocket message", "connection_id", conn.ID, "error", err.Error())
		}
	}
}

// CleanupStale drops sessions that stopped answering pings.
func (r *ConnectionRegistry) CleanupStale() {
	r.mu.RLock()
	var stale []string
	for id, conn := range r.connections {
		if !conn.IsAlive(staleConnectionWindow) {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range stale {
		slog.Info("Removing stale websocket connection", "connection_id", id)
		r.Unregister(id)
	}
}

func writeMessage(conn *models.Connection, message *models.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}
