package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-staffhub/internal/audit/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const retention = 180 * 24 * time.Hour

// Service is the append-only operation log written by admin mutation paths.
type Service struct {
	mongodb *database.MongoDB
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("audit_log")
}

// Record appends an entry. Best effort: failures are logged so auditing
// never blocks the mutation it describes.
func (s *Service) Record(ctx context.Context, actorID, action, entity string) {
	entry := models.Entry{
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		Timestamp: time.Now().UTC(),
	}

	if _, err := s.col().InsertOne(ctx, entry); err != nil {
		slog.Warn("Failed to write audit entry", "action", action, "error", err.Error())
	}
}

// List returns entries newest first, optionally filtered by actor or action.
func (s *Service) List(ctx context.Context, actorID, action string, limit int) ([]models.Entry, error) {
	filter := bson.M{}
	if actorID != "" {
		filter["actor_id"] = actorID
	}
	if action != "" {
		filter["action"] = action
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode audit entries: %w", err)
	}
	return entries, nil
}

// CleanupExpired removes entries past the retention window.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	result, err := s.col().DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup audit entries: %w", err)
	}
	if result.DeletedCount > 0 {
		slog.Info("Cleaned up expired audit entries", "count", result.DeletedCount)
	}
	return result.DeletedCount, nil
}

// CreateIndexes sets up the listing index.
func (s *Service) CreateIndexes(ctx context.Context) error {
	_, err := s.col().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create audit index: %w", err)
	}
	return nil
}
