package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ainaweather/ainaweather/internal/api/models"
	"github.com/ainaweather/ainaweather/internal/api/response"
	"github.com/ainaweather/ainaweather/internal/weather"
	"github.com/ainaweather/ainaweather/pkg/cityname"
)

// defaultHistoryWindowDays is the chart window used when the caller does not
// ask for a specific one.
const defaultHistoryWindowDays = 3

// WeatherHandler handles weather dashboard requests.
type WeatherHandler struct {
	service *weather.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service *weather.Service) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// CreateCity handles POST /v1/cities - fetch the current weather for a city
// and store it under the canonical key.
func (h *WeatherHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req models.CityCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "Invalid request body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.BadRequest(w, r, "Invalid request body", []models.FieldError{
			{Field: "name", Message: "name is required"},
		})
		return
	}

	snap, key, err := h.service.Record(r.Context(), req.Name)
	if err != nil {
		writeWeatherError(w, r, err)
		return
	}

	body := models.CityWeather{CityKey: key, Snapshot: *snap}
	response.Created(w, r, "/v1/cities/"+key, body)
}

// ListCities handles GET /v1/cities - the latest snapshot for every tracked
// city.
func (h *WeatherHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Current(r.Context())
	if err != nil {
		response.InternalError(w, r, "Failed to list cities")
		return
	}

	response.JSON(w, r, http.StatusOK, models.CityList{Cities: cities})
}

// GetCityHistory handles GET /v1/cities/{city}/history - stored snapshots
// over a bounded window, ascending by observation time. The window is the
// past days*24h and defaults to three days; days=0 yields an empty window.
func (h *WeatherHandler) GetCityHistory(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	days := defaultHistoryWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, r, "Invalid query parameter", []models.FieldError{
				{Field: "days", Message: "days must be a non-negative integer"},
			})
			return
		}
		days = parsed
	}

	snapshots, err := h.service.History(r.Context(), city, days)
	if err != nil {
		writeWeatherError(w, r, err)
		return
	}

	body := models.CityHistory{
		CityKey:    cityname.Normalize(city),
		WindowDays: days,
		Snapshots:  snapshots,
	}
	response.JSON(w, r, http.StatusOK, body)
}

// DeleteCity handles DELETE /v1/cities/{city} - remove a city's current
// record and its entire history. Deleting an untracked city is a no-op.
func (h *WeatherHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	if err := h.service.Remove(r.Context(), city); err != nil {
		writeWeatherError(w, r, err)
		return
	}

	response.NoContent(w, r)
}

// writeWeatherError maps weather domain errors onto problem responses.
func writeWeatherError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *weather.ProviderRejectedError
	if errors.As(err, &rejected) {
		response.NotFound(w, r, "City not found: "+rejected.Message)
		return
	}

	var transport *weather.TransportError
	if errors.As(err, &transport) {
		response.UpstreamFailure(w, r, "Weather provider unreachable")
		return
	}

	var malformed *weather.MalformedResponseError
	if errors.As(err, &malformed) {
		response.UpstreamFailure(w, r, "Weather provider returned an unusable response")
		return
	}

	var partialWrite *weather.PartialWriteError
	if errors.As(err, &partialWrite) {
		response.PartialWrite(w, r, "History append failed after the current record was stored; retry the request")
		return
	}

	var partialDelete *weather.PartialDeleteError
	if errors.As(err, &partialDelete) {
		response.PartialWrite(w, r, "City removal did not complete; retry the request")
		return
	}

	if errors.Is(err, weather.ErrInvalidWindow) {
		response.BadRequest(w, r, "Invalid query parameter", []models.FieldError{
			{Field: "days", Message: "days must be a non-negative integer"},
		})
		return
	}

	response.InternalError(w, r, "Failed to process weather request")
}
