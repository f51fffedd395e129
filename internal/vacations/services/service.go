package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-staffhub/internal/vacations/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrRequestNotFound = errors.New("vacation request not found")
	ErrAlreadyDecided  = errors.New("vacation request already decided")
	ErrInvalidRange    = errors.New("end date must not precede start date")
)

// NotificationWriter stores a notification record for a user.
type NotificationWriter interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, body string)
}

// Service manages vacation requests and their approval workflow.
type Service struct {
	mongodb  *database.MongoDB
	notifier NotificationWriter
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

// SetNotifier wires the notification store after construction.
func (s *Service) SetNotifier(n NotificationWriter) {
	s.notifier = n
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("vacations")
}

// List returns requests, optionally scoped to one user or status.
func (s *Service) List(ctx context.Context, userID *primitive.ObjectID, status string) ([]models.VacationRequest, error) {
	filter := bson.M{}
	if userID != nil {
		filter["user_id"] = *userID
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.VacationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode vacation requests: %w", err)
	}
	return requests, nil
}

// Get loads one request.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.VacationRequest, error) {
	var request models.VacationRequest
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to query vacation request: %w", err)
	}
	return &request, nil
}

// Create files a pending request.
func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, start, end time.Time, reason string) (*models.VacationRequest, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	now := time.Now().UTC()
	request := models.VacationRequest{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.col().InsertOne(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create vacation request: %w", err)
	}

	request.ID = result.InsertedID.(primitive.ObjectID)
	return &request, nil
}

// Decide moves a pending request to approved or rejected. Deciding an
// already-decided request conflicts; the first decision wins.
func (s *Service) Decide(ctx context.Context, id, deciderID primitive.ObjectID, approve bool, note string) (*models.VacationRequest, error) {
	status := models.StatusRejected
	if approve {
		status = models.StatusApproved
	}

	now := time.Now().UTC()
	var request models.VacationRequest
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{
			"status":        status,
			"decided_by":    deciderID,
			"decided_at":    now,
			"decision_note": note,
			"updated_at":    now,
		}},
		opts,
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Either missing or already decided; look it up to tell apart
			if _, getErr := s.Get(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrAlreadyDecided
		}
		return nil, fmt.Errorf("failed to decide vacation request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, request.UserID, "Vacation request "+status,
			fmt.Sprintf("Your vacation request %s to %s was %s",
				request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), status))
	}

	return &request, nil
}

// Cancel deletes a pending request; only the owner may cancel.
func (s *Service) Cancel(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := s.col().DeleteOne(ctx, bson.M{"_id": id, "user_id": userID, "status": models.StatusPending})
	if err != nil {
		return fmt.Errorf("failed to cancel vacation request: %w", err)
	}
	if result.DeletedCount == 0 {
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyDecided
	}
	return nil
}
