package openweathermap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainaweather/ainaweather/internal/weather"
	"github.com/ainaweather/ainaweather/internal/weather/openweathermap"
)

func successPayload() map[string]interface{} {
	return map[string]interface{}{
		"cod": 200,
		"weather": []map[string]interface{}{
			{"main": "Clouds", "icon": "04d"},
		},
		"main": map[string]interface{}{
			"temp":     21.3,
			"humidity": 64,
		},
		"wind": map[string]interface{}{
			"speed": 3.6,
		},
		"rain": map[string]interface{}{
			"1h": 0.4,
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *openweathermap.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func TestClient_CurrentByCity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "tokyo", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "ja", r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(successPayload())
	})

	snap, err := client.CurrentByCity(context.Background(), "Tokyo")
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, 21.3, snap.Temperature)
	assert.Equal(t, 64, snap.Humidity)
	assert.Equal(t, 3.6, snap.WindSpeed)
	assert.Equal(t, weather.ConditionClouds, snap.Condition)
	assert.Equal(t, "04d", snap.Icon)
	assert.Equal(t, 0.4, snap.Rain1h)
	assert.False(t, snap.LastUpdate.IsZero())
}

func TestClient_CurrentByCity_QueryIsLowerCasedOnly(t *testing.T) {
	// The provider query uses the lower-cased name. Suffix stripping is a
	// storage-key concern and must not leak into the query term.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "大阪市", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(successPayload())
	})

	_, err := client.CurrentByCity(context.Background(), "大阪市")
	require.NoError(t, err)
}

func TestClient_CurrentByCity_MissingRainDefaultsToZero(t *testing.T) {
	payload := successPayload()
	delete(payload, "rain")

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})

	snap, err := client.CurrentByCity(context.Background(), "tokyo")
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.Rain1h)
}

func TestClient_CurrentByCity_ProviderRejected(t *testing.T) {
	// OpenWeatherMap reports rejection codes as quoted strings.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	snap, err := client.CurrentByCity(context.Background(), "nosuchcity")
	require.Error(t, err)
	assert.Nil(t, snap)

	var rejected *weather.ProviderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 404, rejected.Code)
	assert.Equal(t, "city not found", rejected.Message)
}

func TestClient_CurrentByCity_RejectionUnderErrorStatus(t *testing.T) {
	// The live API pairs rejection bodies with a matching HTTP status; the
	// body still classifies the error as a rejection, not a transport fault.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := client.CurrentByCity(context.Background(), "nosuchcity")

	var rejected *weather.ProviderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 404, rejected.Code)
}

func TestClient_CurrentByCity_MissingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(map[string]interface{})
		wantField string
	}{
		{
			name:      "missing main",
			mutate:    func(p map[string]interface{}) { delete(p, "main") },
			wantField: "main",
		},
		{
			name: "missing temp",
			mutate: func(p map[string]interface{}) {
				delete(p["main"].(map[string]interface{}), "temp")
			},
			wantField: "main.temp",
		},
		{
			name: "missing humidity",
			mutate: func(p map[string]interface{}) {
				delete(p["main"].(map[string]interface{}), "humidity")
			},
			wantField: "main.humidity",
		},
		{
			name:      "missing wind",
			mutate:    func(p map[string]interface{}) { delete(p, "wind") },
			wantField: "wind.speed",
		},
		{
			name: "empty weather array",
			mutate: func(p map[string]interface{}) {
				p["weather"] = []map[string]interface{}{}
			},
			wantField: "weather",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := successPayload()
			tc.mutate(payload)

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(payload)
			})

			_, err := client.CurrentByCity(context.Background(), "tokyo")
			require.Error(t, err)

			var malformed *weather.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.wantField, malformed.Field)
			assert.NotEmpty(t, malformed.Payload)
		})
	}
}

func TestClient_CurrentByCity_TransportErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CurrentByCity(context.Background(), "tokyo")
		var transport *weather.TransportError
		require.ErrorAs(t, err, &transport)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client := openweathermap.NewClient(openweathermap.ClientConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
		})

		_, err := client.CurrentByCity(context.Background(), "tokyo")
		var transport *weather.TransportError
		require.ErrorAs(t, err, &transport)
	})
}
