package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NormalizeTaskOwners repairs historical drift in how task documents record
// their owner. Older writers stored the owner under usuario_id, sometimes as a
// hex string instead of an ObjectId. This rewrites those documents so every
// task carries idUsuario as an ObjectId and reads stay on a single field.
func NormalizeTaskOwners(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	tasks := db.Collection("Tarefa")

	renamed, err := tasks.UpdateMany(ctx,
		bson.M{
			"idUsuario":  bson.M{"$exists": false},
			"usuario_id": bson.M{"$exists": true},
		},
		mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.M{"idUsuario": "$usuario_id"}}},
			bson.D{{Key: "$unset", Value: "usuario_id"}},
		},
	)
	if err != nil {
		return fmt.Errorf("rename task owner field: %w", err)
	}

	// $convert keeps the original value when it is not valid hex, so a
	// malformed document never aborts startup.
	converted, err := tasks.UpdateMany(ctx,
		bson.M{"idUsuario": bson.M{"$type": "string"}},
		mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.M{
				"idUsuario": bson.M{"$convert": bson.M{
					"input":   "$idUsuario",
					"to":      "objectId",
					"onError": "$idUsuario",
				}},
			}}},
		},
	)
	if err != nil {
		return fmt.Errorf("convert task owner ids: %w", err)
	}

	if renamed.ModifiedCount > 0 || converted.ModifiedCount > 0 {
		logger.Info("task owner fields normalized",
			zap.Int64("renamed", renamed.ModifiedCount),
			zap.Int64("converted", converted.ModifiedCount),
		)
	}
	return nil
}
