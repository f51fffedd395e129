package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-staffhub/internal/incidents/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// Service manages incident reports.
type Service struct {
	mongodb *database.MongoDB
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("incidents")
}

// List returns incidents, optionally scoped to one employee, newest first.
func (s *Service) List(ctx context.Context, employeeID *primitive.ObjectID) ([]models.Incident, error) {
	filter := bson.M{}
	if employeeID != nil {
		filter["employee_id"] = *employeeID
	}

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer cursor.Close(ctx)

	var incidents []models.Incident
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, fmt.Errorf("failed to decode incidents: %w", err)
	}
	return incidents, nil
}

// Get loads one incident.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	var incident models.Incident
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to query incident: %w", err)
	}
	return &incident, nil
}

// Create files an incident after checking the employee exists.
func (s *Service) Create(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	count, err := s.mongodb.Collection("employees").CountDocuments(ctx, bson.M{"_id": incident.EmployeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if count == 0 {
		return nil, ErrEmployeeNotFound
	}

	now := time.Now().UTC()
	incident.CreatedAt = now
	incident.UpdatedAt = now

	result, err := s.col().InsertOne(ctx, incident)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	incident.ID = result.InsertedID.(primitive.ObjectID)
	return incident, nil
}

// Update applies a partial update to an incident.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Incident, error) {
	set["updated_at"] = time.Now().UTC()

	var incident models.Incident
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return &incident, nil
}

// Delete removes an incident.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrIncidentNotFound
	}
	return nil
}
