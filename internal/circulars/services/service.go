package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-staffhub/internal/circulars/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCircularNotFound = errors.New("circular not found")
	ErrAlreadyPublished = errors.New("circular already published")
)

// NotificationFanout delivers a notification to a set of users; the
// notifications module provides it.
type NotificationFanout interface {
	NotifyMany(ctx context.Context, userIDs []primitive.ObjectID, title, body string)
}

// Service manages company circulars.
type Service struct {
	mongodb  *database.MongoDB
	notifier NotificationFanout
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

// SetNotifier wires the notification fanout after construction.
func (s *Service) SetNotifier(n NotificationFanout) {
	s.notifier = n
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("circulars")
}

// List returns circulars, newest first. With publishedOnly set, drafts
// are excluded.
func (s *Service) List(ctx context.Context, publishedOnly bool) ([]models.Circular, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list circulars: %w", err)
	}
	defer cursor.Close(ctx)

	var circulars []models.Circular
	if err := cursor.All(ctx, &circulars); err != nil {
		return nil, fmt.Errorf("failed to decode circulars: %w", err)
	}
	return circulars, nil
}

// Get loads one circular.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Circular, error) {
	var circular models.Circular
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&circular)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCircularNotFound
		}
		return nil, fmt.Errorf("failed to query circular: %w", err)
	}
	return &circular, nil
}

// Create stores a new draft circular.
func (s *Service) Create(ctx context.Context, authorID primitive.ObjectID, title, body string) (*models.Circular, error) {
	now := time.Now().UTC()
	circular := models.Circular{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.col().InsertOne(ctx, circular)
	if err != nil {
		return nil, fmt.Errorf("failed to create circular: %w", err)
	}

	circular.ID = result.InsertedID.(primitive.ObjectID)
	return &circular, nil
}

// Update changes a circular's title or body.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, title, body *string) (*models.Circular, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if title != nil {
		set["title"] = *title
	}
	if body != nil {
		set["body"] = *body
	}

	var circular models.Circular
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&circular)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCircularNotFound
		}
		return nil, fmt.Errorf("failed to update circular: %w", err)
	}
	return &circular, nil
}

// Delete removes a circular.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete circular: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrCircularNotFound
	}
	return nil
}

// Publish makes a draft visible to everyone and notifies all active
// users. Publishing twice conflicts.
func (s *Service) Publish(ctx context.Context, id primitive.ObjectID) (*models.Circular, error) {
	now := time.Now().UTC()
	var circular models.Circular
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx,
		bson.M{"_id": id, "published": false},
		bson.M{"$set": bson.M{"published": true, "published_at": now, "updated_at": now}},
		opts,
	).Decode(&circular)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, getErr := s.Get(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrAlreadyPublished
		}
		return nil, fmt.Errorf("failed to publish circular: %w", err)
	}

	s.fanout(ctx, &circular)
	return &circular, nil
}

// fanout notifies every active user about a freshly published circular.
// Fanout failures are logged; the publish itself already committed.
func (s *Service) fanout(ctx context.Context, circular *models.Circular) {
	if s.notifier == nil {
		return
	}

	cursor, err := s.mongodb.Collection("users").Find(ctx,
		bson.M{"active": true},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		slog.Warn("Failed to list circular recipients", "circular_id", circular.ID.Hex(), "error", err.Error())
		return
	}
	defer cursor.Close(ctx)

	var recipients []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &recipients); err != nil {
		slog.Warn("Failed to decode circular recipients", "circular_id", circular.ID.Hex(), "error", err.Error())
		return
	}

	ids := make([]primitive.ObjectID, len(recipients))
	for i, r := range recipients {
		ids[i] = r.ID
	}
	s.notifier.NotifyMany(ctx, ids, "New circular: "+circular.Title, circular.Body)
}
