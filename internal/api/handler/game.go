package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ainaweather/ainaweather/internal/api/middleware"
	"github.com/ainaweather/ainaweather/internal/api/models"
	"github.com/ainaweather/ainaweather/internal/api/response"
	"github.com/ainaweather/ainaweather/internal/game"
	"github.com/ainaweather/ainaweather/internal/user"
	"github.com/ainaweather/ainaweather/internal/weather"
)

// GameHandler handles prediction game requests.
type GameHandler struct {
	games   *game.Service
	users   *user.Service
	weather *weather.Service
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *game.Service, users *user.Service, weatherSvc *weather.Service) *GameHandler {
	return &GameHandler{games: games, users: users, weather: weatherSvc}
}

// CreatePrediction handles POST /v1/game/predictions - play one game round.
// The actual weather is fetched live from the provider and compared against
// the player's prediction; a correct call awards points immediately.
func (h *GameHandler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.InternalError(w, r, "No session on request")
		return
	}

	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "Invalid request body", nil)
		return
	}

	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		response.BadRequest(w, r, "Invalid request body", []models.FieldError{
			{Field: "city", Message: "city is required"},
		})
		return
	}

	// Reject a bad label before spending the provider call
	if !req.Prediction.Valid() {
		response.BadRequest(w, r, "Invalid request body", []models.FieldError{
			{Field: "prediction", Message: "prediction must be one of sunny, cloudy, rainy"},
		})
		return
	}

	if _, err := h.users.GetOrCreate(r.Context(), userID); err != nil {
		response.InternalError(w, r, "Failed to load player profile")
		return
	}

	snap, err := h.weather.Fetch(r.Context(), req.City)
	if err != nil {
		writeWeatherError(w, r, err)
		return
	}

	outcome, err := h.games.RecordPrediction(r.Context(), userID, req.City, req.Prediction, snap.Condition)
	if err != nil {
		if errors.Is(err, game.ErrUnknownPrediction) {
			response.BadRequest(w, r, "Invalid request body", []models.FieldError{
				{Field: "prediction", Message: "prediction must be one of sunny, cloudy, rainy"},
			})
			return
		}
		response.InternalError(w, r, "Failed to record prediction")
		return
	}

	response.JSON(w, r, http.StatusCreated, outcome)
}

// GetLeaderboard handles GET /v1/game/leaderboard - the top players by
// points descending. The limit defaults to ten rows.
func (h *GameHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, r, "Invalid query parameter", []models.FieldError{
				{Field: "limit", Message: "limit must be a positive integer"},
			})
			return
		}
		limit = parsed
	}

	scores, err := h.games.ListTopScores(r.Context(), limit)
	if err != nil {
		response.InternalError(w, r, "Failed to load leaderboard")
		return
	}

	response.JSON(w, r, http.StatusOK, models.Leaderboard{Scores: scores})
}
