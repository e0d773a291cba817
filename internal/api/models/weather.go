package models

import "github.com/ainaweather/ainaweather/internal/weather"

// CityCreateRequest is the body of POST /v1/cities: record the current
// weather for a city. Name is the raw user-entered spelling.
type CityCreateRequest struct {
	Name string `json:"name"`
}

// CityWeather pairs a canonical city key with its stored snapshot.
type CityWeather struct {
	CityKey  string           `json:"city_key"`
	Snapshot weather.Snapshot `json:"snapshot"`
}

// CityList is the dashboard listing: the latest snapshot for every tracked
// city. Entry order carries no meaning.
type CityList struct {
	Cities map[string]weather.Snapshot `json:"cities"`
}

// CityHistory is the chart view data for one city over a bounded window,
// ascending by observation time.
type CityHistory struct {
	CityKey    string             `json:"city_key"`
	WindowDays int                `json:"window_days"`
	Snapshots  []weather.Snapshot `json:"snapshots"`
}
