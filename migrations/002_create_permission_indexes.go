package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "002_create_permission_indexes",
		Description: "Create indexes for the permissions registry and permission groups",
		Up:          up002,
		Down:        down002,
	})
}

func up002(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("permissions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	groupIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "members", Value: 1}},
		},
	}
	_, err = db.Collection("permission_groups").Indexes().CreateMany(ctx, groupIndexes)
	return err
}

func down002(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("permissions").Indexes().DropAll(ctx); err != nil {
		return err
	}
	_, err := db.Collection("permission_groups").Indexes().DropAll(ctx)
	return err
}
