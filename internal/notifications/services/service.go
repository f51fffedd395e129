package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-staffhub/internal/notifications/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotificationNotFound = errors.New("notification not found")

const defaultRetention = 30 * 24 * time.Hour

// Publisher pushes real-time events; the websocket module provides it.
type Publisher interface {
	PublishTo(ctx context.Context, userID, event string, payload any) error
}

// Service stores and serves per-user notifications.
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
	return s.mongodb.Collection("notifications")
}

// Notify stores a notification and pushes it to the user if connected.
// Failures are logged, never surfaced; notification delivery must not
// break the mutation that triggered it.
func (s *Service) Notify(ctx context.Context, userID primitive.ObjectID, title, body string) {
	now := time.Now().UTC()
	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		ExpiresAt: now.Add(defaultRetention),
	}

	result, err := s.col().InsertOne(ctx, notification)
	if err != nil {
		slog.Warn("Failed to store notification", "user_id", userID.Hex(), "error", err.Error())
		return
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)

	if s.publisher != nil {
		if err := s.publisher.PublishTo(ctx, userID.Hex(), "notification", notification); err != nil {
			slog.Warn("Failed to push notification", "user_id", userID.Hex(), "error", err.Error())
		}
	}
}

// NotifyMany fans a notification out to several users.
func (s *Service) NotifyMany(ctx context.Context, userIDs []primitive.ObjectID, title, body string) {
	for _, id := range userIDs {
		s.Notify(ctx, id, title, body)
	}
}

// List returns a user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID, unreadOnly bool, limit int) ([]models.Notification, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID primitive.ObjectID) error {
	result, err := s.col().UpdateOne(ctx,
		bson.M{"_id": notificationID, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (s *Service) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := s.col().UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return result.ModifiedCount, nil
}

// CleanupExpired deletes notifications past their retention window.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	result, err := s.col().DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup notifications: %w", err)
	}
	if result.DeletedCount > 0 {
		slog.Info("Cleaned up expired notifications", "count", result.DeletedCount)
	}
	return result.DeletedCount, nil
}

// CreateIndexes sets up the per-user listing index.
func (s *Service) CreateIndexes(ctx context.Context) error {
	_, err := s.col().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notifications index: %w", err)
	}
	return nil
}
