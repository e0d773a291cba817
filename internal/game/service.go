package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ainaweather/ainaweather/internal/user"
	"github.com/ainaweather/ainaweather/internal/weather"
)

// defaultLeaderboardSize is how many rows ListTopScores returns when the
// caller does not ask for a specific count.
const defaultLeaderboardSize = 10

// ServiceConfig holds configuration for the game service.
type ServiceConfig struct {
	// Predictions is the append-only prediction ledger.
	Predictions Repository

	// Users is the profile store holding the point counters.
	Users user.Repository

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service runs prediction game rounds and serves the leaderboard.
type Service struct {
	predictions Repository
	users       user.Repository
	logger      zerolog.Logger
}

// NewService creates a new game service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		predictions: cfg.Predictions,
		users:       cfg.Users,
		logger:      cfg.Logger,
	}
}

// Outcome is the result of one game round: the appended ledger record and
// the player's profile, updated when the prediction was correct.
type Outcome struct {
	Record  PredictionRecord `json:"record"`
	Profile user.Profile     `json:"profile"`
}

// RecordPrediction scores a player's prediction against the actual provider
// category, appends the outcome to the ledger, and awards the fixed point
// amount when the prediction was correct. The player's profile must already
// exist. The comparison is case-sensitive and exact; provider categories
// outside the 3-way mapping never match.
func (s *Service) RecordPrediction(ctx context.Context, userID, cityName string, predicted Label, actual weather.Condition) (*Outcome, error) {
	expected, ok := predictionConditions[predicted]
	if !ok {
		return nil, ErrUnknownPrediction
	}

	now := time.Now()
	record := PredictionRecord{
		UserID:        userID,
		CityName:      cityName,
		Date:          now.Format("2006-01-02"),
		Prediction:    predicted,
		ActualWeather: actual,
		IsCorrect:     expected == actual,
		Timestamp:     now,
	}

	if err := s.predictions.Append(ctx, &record); err != nil {
		return nil, err
	}

	var profile *user.Profile
	var err error
	if record.IsCorrect {
		profile, err = s.users.AddPoints(ctx, userID, PointsPerCorrect)
	} else {
		profile, err = s.users.Get(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("city", cityName).
		Str("prediction", string(predicted)).
		Str("actual", string(actual)).
		Bool("correct", record.IsCorrect).
		Int("points", profile.Points).
		Msg("prediction recorded")

	return &Outcome{Record: record, Profile: *profile}, nil
}

// ListTopScores returns the top n leaderboard rows by points descending.
// The order among equal point totals is store-defined; only the point
// values themselves are deterministic.
func (s *Service) ListTopScores(ctx context.Context, n int) ([]Score, error) {
	if n <= 0 {
		n = defaultLeaderboardSize
	}

	profiles, err := s.users.TopByPoints(ctx, n)
	if err != nil {
		return nil, err
	}

	scores := make([]Score, 0, len(profiles))
	for _, p := range profiles {
		scores = append(scores, Score{Name: p.Name, Points: p.Points})
	}
	return scores, nil
}
