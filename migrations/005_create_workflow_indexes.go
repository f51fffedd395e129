package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "005_create_workflow_indexes",
		Description: "Create indexes for vacations, incidents, chat and file shares",
		Up:          up005,
		Down:        down005,
	})
}

func up005(ctx context.Context, db *mongo.Database) error {
	vacationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	if _, err := db.Collection("vacations").Indexes().CreateMany(ctx, vacationIndexes); err != nil {
		return err
	}

	if _, err := db.Collection("incidents").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "occurred_at", Value: -1}},
	}); err != nil {
		return err
	}

	chatIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	if _, err := db.Collection("chat_messages").Indexes().CreateMany(ctx, chatIndexes); err != nil {
		return err
	}

	fileIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "shared_with", Value: 1}},
		},
	}
	_, err := db.Collection("fileshares").Indexes().CreateMany(ctx, fileIndexes)
	return err
}

func down005(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{"vacations", "incidents", "chat_messages", "fileshares"} {
		if _, err := db.Collection(name).Indexes().DropAll(ctx); err != nil {
			return err
		}
	}
	return nil
}
