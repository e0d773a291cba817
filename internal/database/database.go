// Package database provides MongoDB connection management.
package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds document store connection configuration.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	// MaxConnectWait bounds the startup ping retries. Store credentials are
	// a startup concern: a store that never becomes reachable is a fatal
	// configuration error, not a runtime one.
	MaxConnectWait time.Duration
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	connectTimeout, _ := time.ParseDuration(getEnvOrDefault("MONGO_CONNECT_TIMEOUT", "10s"))
	maxConnectWait, _ := time.ParseDuration(getEnvOrDefault("MONGO_MAX_CONNECT_WAIT", "30s"))

	return Config{
		URI:            os.Getenv("MONGO_URI"),
		Database:       getEnvOrDefault("MONGO_DATABASE", "ainaweather"),
		ConnectTimeout: connectTimeout,
		MaxConnectWait: maxConnectWait,
	}
}

// Connect creates a MongoDB client and verifies connectivity. The initial
// ping is retried with exponential backoff up to MaxConnectWait so a store
// that is still starting does not fail the boot.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("store URI is not configured")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create store client: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.MaxConnectWait
	policy := backoff.WithContext(bo, ctx)

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}

	if err := backoff.Retry(ping, policy); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return client, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
