package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"go-staffhub/internal/websocket/models"
	"go-staffhub/pkg/database"

	"github.com/google/uuid"
)

// Redis pub/sub channels for cross-instance fan-out.
const (
	channelBroadcast = "staffhub:ws:broadcast"
	channelUser      = "staffhub:ws:user"
)

// RedisHub relays websocket events between instances. Each instance
// publishes with its own server id and ignores its own envelopes.
type RedisHub struct {
	redis    *database.Redis
	registry *ConnectionRegistry
	serverID string
}

func NewRedisHub(redis *database.Redis, registry *ConnectionRegistry) *RedisHub {
	return &RedisHub{
		redis:    redis,
		registry: registry,
		serverID: uuid.New().String(),
	}
}

// Start subscribes to the fan-out channels and relays remote envelopes
// into the local registry until ctx is cancelled.
func (h *RedisHub) Start(ctx context.Context) {
	if h.redis == nil {
		slog.Info("Redis unavailable, websocket hub running single-instance")
		return
	}

	pubsub := h.redis.Subscribe(ctx, channelBroadcast, channelUser)
	slog.Info("WebSocket Redis hub started", "server_id", h.serverID)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				h.handle(msg.Channel, []byte(msg.Payload))
			}
		}
	}()
}

func (h *RedisHub) handle(channel string, payload []byte) {
	var envelope models.RedisEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		slog.Error("Failed to unmarshal hub envelope", "channel", channel, "error", err.Error())
		return
	}
	if envelope.ServerID == h.serverID {
		return
	}

	switch channel {
	case channelBroadcast:
		h.registry.Broadcast(&envelope.Message)
	case channelUser:
		if envelope.UserID != "" {
			h.registry.SendToUser(envelope.UserID, &envelope.Message)
		}
	}
}

// PublishBroadcast fans a message out to all instances.
func (h *RedisHub) PublishBroadcast(ctx context.Context, message *models.Message) error {
	if h.redis == nil {
		return nil
	}
	return h.redis.Publish(ctx, channelBroadcast, models.RedisEnvelope{
		ServerID: h.serverID,
		Message:  *message,
	})
}

// PublishToUser fans a targeted message out to all instances.
func (h *RedisHub) PublishToUser(ctx context.Context, userID string, message *models.Message) error {
	if h.redis == nil {
		return nil
	}
	return h.redis.Publish(ctx, channelUser, models.RedisEnvelope{
		ServerID: h.serverID,
		UserID:   userID,
		Message:  *message,
	})
}
