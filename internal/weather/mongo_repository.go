package weather

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the weather store.
const (
	collCities     = "cities"
	collHistorical = "historical_weather"
)

// MongoRepository is a MongoDB implementation of Repository. Current
// snapshots live in the cities collection keyed by city key; history entries
// live in historical_weather with auto-assigned ids.
type MongoRepository struct {
	cities     *mongo.Collection
	historical *mongo.Collection
}

// NewMongoRepository creates a new MongoDB weather repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		cities:     db.Collection(collCities),
		historical: db.Collection(collHistorical),
	}
}

// currentDoc is the cities collection document shape: the city key is the
// document id, the snapshot fields are inlined.
type currentDoc struct {
	Key      string   `bson:"_id"`
	Snapshot Snapshot `bson:",inline"`
}

// UpsertCurrent overwrites the current-weather record for a city key.
func (r *MongoRepository) UpsertCurrent(ctx context.Context, key string, snap Snapshot) error {
	doc := currentDoc{Key: key, Snapshot: snap}

	_, err := r.cities.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert current weather for %q: %w", key, err)
	}
	return nil
}

// AppendHistory adds one immutable history entry for a city key.
func (r *MongoRepository) AppendHistory(ctx context.Context, key string, snap Snapshot) error {
	rec := HistoricalRecord{CityKey: key, Snapshot: snap}

	if _, err := r.historical.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("append history for %q: %w", key, err)
	}
	return nil
}

// ListCurrent returns the latest snapshot for every city.
func (r *MongoRepository) ListCurrent(ctx context.Context) (map[string]Snapshot, error) {
	cursor, err := r.cities.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list current weather: %w", err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]Snapshot)
	for cursor.Next(ctx) {
		var doc currentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode current weather record: %w", err)
		}
		out[doc.Key] = doc.Snapshot
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list current weather: %w", err)
	}

	return out, nil
}

// QueryHistory returns history entries within the window, ascending by LastUpdate.
func (r *MongoRepository) QueryHistory(ctx context.Context, key string, windowDays int) ([]Snapshot, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -windowDays)

	filter := bson.M{
		"city_name":   key,
		"last_update": bson.M{"$gte": since, "$lte": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "last_update", Value: 1}})

	cursor, err := r.historical.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query history for %q: %w", key, err)
	}
	defer cursor.Close(ctx)

	snaps := make([]Snapshot, 0)
	for cursor.Next(ctx) {
		var rec HistoricalRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode history record for %q: %w", key, err)
		}
		snaps = append(snaps, rec.Snapshot)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("query history for %q: %w", key, err)
	}

	return snaps, nil
}

// DeleteCity removes the current record and all history entries for a key.
// The two deletions are not transactional; a failure partway through is
// reported as *PartialDeleteError so the caller can re-invoke the deletion.
func (r *MongoRepository) DeleteCity(ctx context.Context, key string) error {
	if _, err := r.cities.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return &PartialDeleteError{CityKey: key, CurrentDeleted: false, Err: err}
	}

	if _, err := r.historical.DeleteMany(ctx, bson.M{"city_name": key}); err != nil {
		return &PartialDeleteError{CityKey: key, CurrentDeleted: true, Err: err}
	}

	return nil
}

// Ensure MongoRepository implements Repository interface.
var _ Repository = (*MongoRepository)(nil)
