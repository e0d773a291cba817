// Package game provides the weather prediction game: an append-only ledger
// of prediction outcomes and a points leaderboard.
package game

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ainaweather/ainaweather/internal/weather"
)

// Service errors.
var (
	ErrUnknownPrediction = errors.New("unknown prediction label")
)

// PointsPerCorrect is the fixed award for a correct prediction.
const PointsPerCorrect = 10

// Label is a player's 3-way weather prediction.
type Label string

const (
	LabelSunny  Label = "sunny"
	LabelCloudy Label = "cloudy"
	LabelRainy  Label = "rainy"
)

// Valid reports whether l is one of the three playable labels.
func (l Label) Valid() bool {
	_, ok := predictionConditions[l]
	return ok
}

// predictionConditions maps each prediction label to the provider category
// it is checked against. The comparison is verbatim and case-sensitive; any
// provider category outside this table simply never matches.
var predictionConditions = map[Label]weather.Condition{
	LabelSunny:  weather.ConditionClear,
	LabelCloudy: weather.ConditionClouds,
	LabelRainy:  weather.ConditionRain,
}

// PredictionRecord is one append-only game round outcome. Records are never
// updated or deleted. CityName is stored raw, exactly as the player entered
// it, not as a canonical city key.
type PredictionRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID        string             `bson:"user_id" json:"user_id"`
	CityName      string             `bson:"city_name" json:"city_name"`
	Date          string             `bson:"date" json:"date"` // calendar day, YYYY-MM-DD
	Prediction    Label              `bson:"prediction" json:"prediction"`
	ActualWeather weather.Condition  `bson:"actual_weather" json:"actual_weather"`
	IsCorrect     bool               `bson:"is_correct" json:"is_correct"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}

// Score is one leaderboard row.
type Score struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
