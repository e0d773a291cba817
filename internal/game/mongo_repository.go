package game

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// collPredictions is the predictions collection name.
const collPredictions = "predictions"

// MongoRepository is a MongoDB implementation of Repository.
type MongoRepository struct {
	predictions *mongo.Collection
}

// NewMongoRepository creates a new MongoDB prediction repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{predictions: db.Collection(collPredictions)}
}

// Append stores one prediction outcome with an auto-assigned id.
func (r *MongoRepository) Append(ctx context.Context, record *PredictionRecord) error {
	if _, err := r.predictions.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("append prediction for user %q: %w", record.UserID, err)
	}
	return nil
}

// Ensure MongoRepository implements Repository interface.
var _ Repository = (*MongoRepository)(nil)
