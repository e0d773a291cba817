// Package main provides the entrypoint for the Aina Weather API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ainaweather/ainaweather/internal/api"
	"github.com/ainaweather/ainaweather/internal/api/middleware"
	"github.com/ainaweather/ainaweather/internal/config"
	"github.com/ainaweather/ainaweather/internal/database"
	"github.com/ainaweather/ainaweather/internal/game"
	"github.com/ainaweather/ainaweather/internal/telemetry"
	"github.com/ainaweather/ainaweather/internal/user"
	"github.com/ainaweather/ainaweather/internal/weather"
	"github.com/ainaweather/ainaweather/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "ainaweather-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Aina Weather API")

	// Load configuration; missing secrets abort startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to the document store
	client, err := database.Connect(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to document store")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if disconnectErr := client.Disconnect(disconnectCtx); disconnectErr != nil {
			log.Error().Err(disconnectErr).Msg("failed to disconnect from document store")
		}
	}()
	db := client.Database(cfg.Store.Database)
	log.Info().
		Str("database", cfg.Store.Database).
		Msg("document store connected")

	// Initialize the weather provider
	provider := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey: cfg.OpenWeatherAPIKey,
		Logger: log,
	})

	// Initialize repositories and services
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider:   provider,
		Repository: weather.NewMongoRepository(db),
		Logger:     log,
	})
	log.Info().Str("provider", provider.Name()).Msg("weather service initialized")

	userRepo := user.NewMongoRepository(db)
	userService := user.NewService(userRepo, log)
	log.Info().Msg("user service initialized")

	gameService := game.NewService(game.ServiceConfig{
		Predictions: game.NewMongoRepository(db),
		Users:       userRepo,
		Logger:      log,
	})
	log.Info().Msg("game service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:   Version,
		BuildTime: BuildTime,
		Logger:    log,
		Metrics:   metrics,
		StorePing: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		WeatherService: weatherService,
		UserService:    userService,
		GameService:    gameService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
