// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ainaweather/ainaweather/internal/database"
)

// AppConfig holds the process-wide configuration. Secrets (the weather
// provider API key and the store credentials inside the Mongo URI) are
// supplied out-of-band through the environment; a missing secret is a
// startup-time fatal, never a runtime error.
type AppConfig struct {
	// Port the HTTP server listens on.
	Port string

	// Env names the deployment environment (development, production, ...).
	Env string

	// OpenWeatherAPIKey authenticates against the weather provider.
	OpenWeatherAPIKey string

	// Store is the document store connection configuration.
	Store database.Config
}

// Load reads configuration from the environment, honoring a local .env file
// when present, and validates the required secrets.
func Load() (*AppConfig, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:              getEnvOrDefault("APP_PORT", "8080"),
		Env:               getEnvOrDefault("APP_ENV", "development"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		Store:             database.ConfigFromEnv(),
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}
	if cfg.Store.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
