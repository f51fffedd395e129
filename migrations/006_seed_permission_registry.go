package migrations

import (
	"context"
	"time"

	"go-staffhub/pkg/permissions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "006_seed_permission_registry",
		Description: "Seed the permissions registry with the built-in keys",
		Up:          up006,
		Down:        down006,
	})
}

func up006(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("permissions")
	now := time.Now().UTC()

	for _, perm := range permissions.DefaultRegistry {
		update := bson.M{
			"$set": bson.M{
				"label":       perm.Label,
				"description": perm.Description,
				"category":    perm.Category,
			},
			"$setOnInsert": bson.M{
				"key":        perm.Key,
				"created_at": now,
			},
		}
		_, err := collection.UpdateOne(ctx, bson.M{"key": perm.Key}, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

func down006(ctx context.Context, db *mongo.Database) error {
	keys := make([]string, len(permissions.DefaultRegistry))
	for i, perm := range permissions.DefaultRegistry {
		keys[i] = perm.Key
	}
	_, err := db.Collection("permissions").DeleteMany(ctx, bson.M{"key": bson.M{"$in": keys}})
	return err
}
