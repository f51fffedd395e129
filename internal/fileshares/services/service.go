package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-staffhub/internal/fileshares/models"
	"go-staffhub/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds size limit")
)

// Uploads above this size are rejected.
const maxFileSize = 50 << 20

// Service stores uploaded files on disk and their metadata in Mongo.
type Service struct {
	mongodb   *database.MongoDB
	uploadDir string
}

func NewService(mongodb *database.MongoDB, uploadDir string) *Service {
	return &Service{mongodb: mongodb, uploadDir: uploadDir}
}

func (s *Service) col() *mongo.Collection {
	return s.mongodb.Collection("fileshares")
}

// EnsureUploadDir creates the upload directory if missing.
func (s *Service) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Save writes the bytes to disk under a random name and records the
// metadata. On a metadata failure the on-disk file is removed again.
func (s *Service) Save(ctx context.Context, ownerID primitive.ObjectID, filename, contentType string, data []byte) (*models.FileShare, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > maxFileSize {
		return nil, ErrFileTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	storedName := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.uploadDir, storedName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	share := models.FileShare{
		Filename:    filepath.Base(filename),
		StoredName:  storedName,
		Size:        int64(len(data)),
		ContentType: contentType,
		OwnerID:     ownerID,
		SharedWith:  []primitive.ObjectID{},
		CreatedAt:   time.Now().UTC(),
	}

	result, err := s.col().InsertOne(ctx, share)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to store file metadata: %w", err)
	}

	share.ID = result.InsertedID.(primitive.ObjectID)
	return &share, nil
}

// List returns files visible to the user. With all set, every file is
// returned regardless of ownership.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID, all bool) ([]models.FileShare, error) {
	filter := bson.M{}
	if !all {
		filter["$or"] = []bson.M{
			{"owner_id": userID},
			{"shared_with": userID},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer cursor.Close(ctx)

	var shares []models.FileShare
	if err := cursor.All(ctx, &shares); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}
	return shares, nil
}

// Get loads one file's metadata.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.FileShare, error) {
	var share models.FileShare
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to query file: %w", err)
	}
	return &share, nil
}

// Read returns the metadata and the stored bytes.
func (s *Service) Read(ctx context.Context, id primitive.ObjectID) (*models.FileShare, []byte, error) {
	share, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.uploadDir, share.StoredName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return share, data, nil
}

// Share replaces the file's share list.
func (s *Service) Share(ctx context.Context, id primitive.ObjectID, userIDs []primitive.ObjectID) (*models.FileShare, error) {
	if userIDs == nil {
		userIDs = []primitive.ObjectID{}
	}

	var share models.FileShare
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"shared_with": userIDs}},
		opts,
	).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to update share list: %w", err)
	}
	return &share, nil
}

// Delete removes the metadata and the on-disk file. A missing disk file
// is tolerated; the metadata is authoritative.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	share, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.col().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete file metadata: %w", err)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, share.StoredName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
