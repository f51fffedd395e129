package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "004_create_notifications_indexes",
		Description: "Create indexes for notifications and the audit log",
		Up:          up004,
		Down:        down004,
	})
}

func up004(ctx context.Context, db *mongo.Database) error {
	notificationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
		},
	}
	if _, err := db.Collection("notifications").Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		return err
	}

	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "timestamp", Value: -1}},
		},
	}
	_, err := db.Collection("audit_log").Indexes().CreateMany(ctx, auditIndexes)
	return err
}

func down004(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("notifications").Indexes().DropAll(ctx); err != nil {
		return err
	}
	_, err := db.Collection("audit_log").Indexes().DropAll(ctx)
	return err
}
