package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Service provides user profile operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetOrCreate retrieves a user's profile, creating the initial profile on
// first access.
func (s *Service) GetOrCreate(ctx context.Context, id string) (*Profile, error) {
	profile, err := s.repo.Get(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	profile = NewProfile(id)
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", id).
		Str("name", profile.Name).
		Msg("user profile created")

	return profile, nil
}
