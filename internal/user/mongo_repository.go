package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collUsers is the users collection name.
const collUsers = "users"

// MongoRepository is a MongoDB implementation of Repository.
type MongoRepository struct {
	users *mongo.Collection
}

// NewMongoRepository creates a new MongoDB user repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{users: db.Collection(collUsers)}
}

// Get retrieves a profile by user id.
func (r *MongoRepository) Get(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %q: %w", id, err)
	}
	return &profile, nil
}

// Create stores a new profile.
func (r *MongoRepository) Create(ctx context.Context, profile *Profile) error {
	if _, err := r.users.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("create user %q: %w", profile.ID, err)
	}
	return nil
}

// AddPoints atomically increments a user's points and returns the updated profile.
func (r *MongoRepository) AddPoints(ctx context.Context, id string, delta int) (*Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$inc": bson.M{"points": delta}}

	var profile Profile
	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("add points for user %q: %w", id, err)
	}
	return &profile, nil
}

// TopByPoints returns up to n profiles ordered by points descending. Ties
// come back in store-defined order.
func (r *MongoRepository) TopByPoints(ctx context.Context, n int) ([]Profile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list top scores: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := make([]Profile, 0, n)
	for cursor.Next(ctx) {
		var p Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode user profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list top scores: %w", err)
	}

	return profiles, nil
}

// Ensure MongoRepository implements Repository interface.
var _ Repository = (*MongoRepository)(nil)
