package weather

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ainaweather/ainaweather/pkg/cityname"
)

// Service errors.
var (
	ErrInvalidWindow = errors.New("history window must not be negative")
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// CurrentByCity fetches the current weather for a city by name.
	CurrentByCity(ctx context.Context, cityName string) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Repository is the weather record store.
	Repository Repository

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service records and serves weather data. Raw city names are normalized to
// canonical keys at this boundary; the provider query and the stored records
// never see each other's spelling rules.
type Service struct {
	provider Provider
	repo     Repository
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		repo:     cfg.Repository,
		logger:   cfg.Logger,
	}
}

// Record fetches the current weather for a city and stores it: the current
// record is overwritten, then the same snapshot is appended to history. The
// two writes are one logical action but are not transactional; when the
// history append fails after the upsert succeeded, the error is a
// *PartialWriteError and the caller should retry the whole action. A fetch
// failure writes nothing. Returns the stored snapshot and the city key.
func (s *Service) Record(ctx context.Context, rawCity string) (*Snapshot, string, error) {
	snap, err := s.provider.CurrentByCity(ctx, rawCity)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("city", rawCity).
			Str("provider", s.provider.Name()).
			Msg("weather fetch failed")
		return nil, "", err
	}

	key := cityname.Normalize(rawCity)

	if err := s.repo.UpsertCurrent(ctx, key, *snap); err != nil {
		return nil, "", err
	}

	if err := s.repo.AppendHistory(ctx, key, *snap); err != nil {
		s.logger.Error().
			Err(err).
			Str("city_key", key).
			Msg("history append failed after current upsert")
		return nil, "", &PartialWriteError{CityKey: key, Err: err}
	}

	s.logger.Debug().
		Str("city_key", key).
		Str("condition", string(snap.Condition)).
		Float64("temperature", snap.Temperature).
		Msg("weather recorded")

	return snap, key, nil
}

// Fetch retrieves the current weather for a city without touching the store.
func (s *Service) Fetch(ctx context.Context, rawCity string) (*Snapshot, error) {
	return s.provider.CurrentByCity(ctx, rawCity)
}

// Current returns the latest stored snapshot for every tracked city.
func (s *Service) Current(ctx context.Context) (map[string]Snapshot, error) {
	return s.repo.ListCurrent(ctx)
}

// History returns the stored snapshots for a city over the past windowDays
// days, ascending by LastUpdate.
func (s *Service) History(ctx context.Context, rawCity string, windowDays int) ([]Snapshot, error) {
	if windowDays < 0 {
		return nil, ErrInvalidWindow
	}
	return s.repo.QueryHistory(ctx, cityname.Normalize(rawCity), windowDays)
}

// Remove deletes a city's current record and its entire history. The call is
// safe to re-invoke after a *PartialDeleteError.
func (s *Service) Remove(ctx context.Context, rawCity string) error {
	return s.repo.DeleteCity(ctx, cityname.Normalize(rawCity))
}
