package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-staffhub/internal/chat/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// Publisher pushes real-time events; the websocket module provides it.
type Publisher interface {
	PublishTo(ctx context.Context, userID, event string, payload any) error
}

// Service stores direct messages and pushes them to connected
// recipients.
type Service struct {
	mongodb   *database.MongoDB
	publisher Publisher
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

// SetPublisher wires the real-time side-channel after construction.
func (s *Service) SetPublisher(p Publisher) {
	s.publisher = p
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("chat_messages")
}

// Send stores a message and pushes it to the recipient if connected.
// Push failures are logged; the message is already persisted.
func (s *Service) Send(ctx context.Context, senderID, recipientID primitive.ObjectID, body string) (*models.Message, error) {
	count, err := s.mongodb.Collection("users").CountDocuments(ctx, bson.M{"_id": recipientID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to verify recipient: %w", err)
	}
	if count == 0 {
		return nil, ErrRecipientNotFound
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}

	result, err := s.col().InsertOne(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	message.ID = result.InsertedID.(primitive.ObjectID)

	if s.publisher != nil {
		if err := s.publisher.PublishTo(ctx, recipientID.Hex(), "chat_message", message); err != nil {
			slog.Warn("Failed to push chat message", "recipient_id", recipientID.Hex(), "error", err.Error())
		}
	}

	return &message, nil
}

// Conversation returns the messages exchanged between two users,
// newest first.
func (s *Service) Conversation(ctx context.Context, userA, userB primitive.ObjectID, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	filter := bson.M{"$or": []bson.M{
		{"sender_id": userA, "recipient_id": userB},
		{"sender_id": userB, "recipient_id": userA},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// CreateIndexes sets up the conversation lookup indexes.
func (s *Service) CreateIndexes(ctx context.Context) error {
	_, err := s.col().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create chat indexes: %w", err)
	}
	return nil
}
