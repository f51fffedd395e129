package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go-staffhub/internal/websocket/models"

	"github.com/gorilla/websocket"
)

const (
	readDeadline = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Service is the websocket publisher: local delivery through the
// registry plus cross-instance fan-out through the Redis hub.
type Service struct {
	registry *ConnectionRegistry
	hub      *RedisHub
}

func NewService(registry *ConnectionRegistry, hub *RedisHub) *Service {
	return &Service{
		registry: registry,
		hub:      hub,
	}
}

// Registry exposes the connection registry.
func (s *Service) Registry() *ConnectionRegistry {
	return s.registry
}

// Publish broadcasts an event to every connected client on every instance.
func (s *Service) Publish(ctx context.Context, event string, payload any) error {
	message := &models.Message{
		Event:     event,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	}

	s.registry.Broadcast(message)
	return s.hub.PublishBroadcast(ctx, message)
}

// PublishTo delivers an event to one user's sessions across instances.
// A user with no open sessions is not an error.
func (s *Service) PublishTo(ctx context.Context, userID, event string, payload any) error {
	message := &models.Message{
		Event:     event,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	}

	s.registry.SendToUser(userID, message)
	return s.hub.PublishToUser(ctx, userID, message)
}

// HandleConnection runs the read/ping loop for a registered session and
// unregisters it on exit.
func (s *Service) HandleConnection(ctx context.Context, conn *models.Connection) {
	defer s.registry.Unregister(conn.ID)

	welcome := &models.Message{
		Event: models.EventSystem,
		Data: map[string]any{
			"message":       "connected",
			"connection_id": conn.ID,
		},
		Timestamp: time.Now().UTC(),
	}
	writeMessage(conn, welcome)

	conn.Conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.Conn.SetPongHandler(func(string) error {
		conn.Touch()
		conn.Conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	incoming := make(chan []byte, 16)
	errCh := make(chan error, 1)

	go func() {
		for {
			_, data, err := conn.Conn.ReadMessage()
			if err != nil {
				errCh <- err
				return
			}
			incoming <- data
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("Ping failed, dropping connection", "connection_id", conn.ID)
				return
			}

		case data := <-incoming:
			var msg models.Message
			if err := json.Unmarshal(data, &msg); err != nil {
				slog.Debug("Ignoring malformed websocket frame", "connection_id", conn.ID)
				continue
			}
			if msg.Event == models.EventHeartbeat {
				conn.Touch()
				writeMessage(conn, &models.Message{
					Event:     models.EventHeartbeat,
					Timestamp: time.Now().UTC(),
				})
			}

		case err := <-errCh:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("WebSocket read error", "connection_id", conn.ID, "error", err.Error())
			}
			return
		}
	}
}
