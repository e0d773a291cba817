// Package api provides the HTTP API for Aina Weather.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ainaweather/ainaweather/internal/api/handler"
	"github.com/ainaweather/ainaweather/internal/api/middleware"
	"github.com/ainaweather/ainaweather/internal/game"
	"github.com/ainaweather/ainaweather/internal/user"
	"github.com/ainaweather/ainaweather/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	Metrics        *middleware.Metrics
	StorePing      handler.Pinger
	WeatherService *weather.Service
	UserService    *user.Service
	GameService    *game.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)          // Generate/propagate request ID first
	r.Use(middleware.Tracing())          // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.Session)              // Anonymous session identity

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.StorePing)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherService)
	meHandler := handler.NewMeHandler(cfg.UserService)
	gameHandler := handler.NewGameHandler(cfg.GameService, cfg.UserService, cfg.WeatherService)

	// Create rate limit middleware for different endpoint categories
	fetchRateLimit := middleware.RateLimitBySession(middleware.FetchRateLimit)       // 30 req/min
	standardRateLimit := middleware.RateLimitBySession(middleware.StandardRateLimit) // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// City dashboard endpoints
		r.Route("/cities", func(r chi.Router) {
			// Creating a city record calls the weather provider
			r.With(fetchRateLimit).Post("/", weatherHandler.CreateCity)

			r.With(standardRateLimit).Get("/", weatherHandler.ListCities)
			r.With(standardRateLimit).Get("/{city}/history", weatherHandler.GetCityHistory)
			r.With(standardRateLimit).Delete("/{city}", weatherHandler.DeleteCity)
		})

		// Profile behind the caller's session
		r.With(standardRateLimit).Get("/me", meHandler.GetMe)

		// Prediction game endpoints
		r.Route("/game", func(r chi.Router) {
			// Each round fetches live weather from the provider
			r.With(fetchRateLimit).Post("/predictions", gameHandler.CreatePrediction)

			r.With(standardRateLimit).Get("/leaderboard", gameHandler.GetLeaderboard)
		})
	})

	return r
}
