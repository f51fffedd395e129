package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "003_create_employees_indexes",
		Description: "Create indexes for the employees collection",
		Up:          up003,
		Down:        down003,
	})
}

func up003(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "department", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}

	_, err := db.Collection("employees").Indexes().CreateMany(ctx, indexes)
	return err
}

func down003(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("employees").Indexes().DropAll(ctx)
	return err
}
