// Package openweathermap implements weather acquisition against the
// OpenWeatherMap current-weather API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ainaweather/ainaweather/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// responseLang is the language requested for provider-supplied text.
	responseLang = "ja"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenWeatherMap API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). Acquisition is
	// fire-once: the client performs no retries and relies on the transport
	// default timeout.
	HTTPClient *http.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// CurrentByCity fetches the current weather for a city. The query term is
// the lower-cased city name; canonical-key normalization is a storage
// concern and never applies to the provider query. Errors are reported as
// *weather.TransportError, *weather.ProviderRejectedError, or
// *weather.MalformedResponseError.
func (c *Client) CurrentByCity(ctx context.Context, cityName string) (*weather.Snapshot, error) {
	query := url.Values{}
	query.Set("q", strings.ToLower(cityName))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", responseLang)

	reqURL := fmt.Sprintf("%s/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &weather.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &weather.TransportError{Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &weather.TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	// Rejections arrive as JSON bodies with a non-200 cod, under a matching
	// HTTP status. Parse the body first so they classify as rejections; a
	// non-200 status with no parseable body is a transport failure.
	var owmResp currentWeatherResponse
	if err := json.Unmarshal(payload, &owmResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &weather.TransportError{Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
		}
		return nil, &weather.MalformedResponseError{Field: "body", Payload: payload}
	}

	if owmResp.Cod != http.StatusOK {
		c.logger.Debug().
			Int("cod", int(owmResp.Cod)).
			Str("message", owmResp.Message).
			Str("city", cityName).
			Msg("provider rejected weather request")
		return nil, &weather.ProviderRejectedError{Code: int(owmResp.Cod), Message: owmResp.Message}
	}

	return toSnapshot(&owmResp, payload)
}

// toSnapshot maps the provider payload onto the snapshot shape, checking for
// missing expected fields. A missing precipitation figure maps to 0;
// LastUpdate is the acquisition time, not any provider-supplied time.
func toSnapshot(resp *currentWeatherResponse, payload []byte) (*weather.Snapshot, error) {
	switch {
	case resp.Main == nil:
		return nil, &weather.MalformedResponseError{Field: "main", Payload: payload}
	case resp.Main.Temp == nil:
		return nil, &weather.MalformedResponseError{Field: "main.temp", Payload: payload}
	case resp.Main.Humidity == nil:
		return nil, &weather.MalformedResponseError{Field: "main.humidity", Payload: payload}
	case resp.Wind == nil || resp.Wind.Speed == nil:
		return nil, &weather.MalformedResponseError{Field: "wind.speed", Payload: payload}
	case len(resp.Weather) == 0:
		return nil, &weather.MalformedResponseError{Field: "weather", Payload: payload}
	}

	snap := &weather.Snapshot{
		Temperature: *resp.Main.Temp,
		Humidity:    *resp.Main.Humidity,
		WindSpeed:   *resp.Wind.Speed,
		Condition:   weather.Condition(resp.Weather[0].Main),
		Icon:        resp.Weather[0].Icon,
		LastUpdate:  time.Now(),
	}

	if resp.Rain != nil && resp.Rain.OneHour != nil {
		snap.Rain1h = *resp.Rain.OneHour
	}

	return snap, nil
}

// statusCode decodes the provider's cod field, which arrives as a JSON
// number on success but as a quoted string on rejection payloads.
type statusCode int

func (s *statusCode) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	code, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("parsing cod %q: %w", string(data), err)
	}
	*s = statusCode(code)
	return nil
}

// OpenWeatherMap API response structure. Expected fields are pointers so
// their absence is distinguishable from zero values.
type currentWeatherResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
}
