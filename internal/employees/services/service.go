package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-staffhub/internal/employees/models"
	"go-staffhub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// ListFilter narrows employee listings.
type ListFilter struct {
	Department string
	Status     string
	Search     string
}

// Service manages employee records.
type Service struct {
	mongodb *database.MongoDB
}

func NewService(mongodb *database.MongoDB) *Service {
	return &Service{mongodb: mongodb}
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("employees")
}

func (f ListFilter) query() bson.M {
	filter := bson.M{}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": regex},
			bson.M{"last_name": regex},
			bson.M{"email": regex},
		}
	}
	return filter
}

// List returns employees matching the filter, sorted by last name.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}})
	cursor, err := s.col().Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}

// Get loads one employee record.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	return &employee, nil
}

// Create inserts a new employee record.
func (s *Service) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	if employee.Status == "" {
		employee.Status = models.StatusActive
	}

	result, err := s.col().InsertOne(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	employee.ID = result.InsertedID.(primitive.ObjectID)
	return employee, nil
}

// Update applies a field-wise partial update.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Employee, error) {
	set["updated_at"] = time.Now().UTC()

	var employee models.Employee
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return &employee, nil
}

// Delete removes an employee record.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
