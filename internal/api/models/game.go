package models

import "github.com/ainaweather/ainaweather/internal/game"

// PredictionRequest is the body of POST /v1/game/predictions: one game
// round. City is the raw user-entered spelling; Prediction is one of
// sunny, cloudy, rainy.
type PredictionRequest struct {
	City       string     `json:"city"`
	Prediction game.Label `json:"prediction"`
}

// Leaderboard is the ranking view: rows ordered by points descending. The
// order among equal point totals is store-defined.
type Leaderboard struct {
	Scores []game.Score `json:"scores"`
}
