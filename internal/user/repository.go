package user

import "context"

// Repository defines the interface for user profile persistence.
type Repository interface {
	// Get retrieves a profile by user id.
	// Returns ErrUserNotFound if no profile exists.
	Get(ctx context.Context, id string) (*Profile, error)

	// Create stores a new profile.
	Create(ctx context.Context, profile *Profile) error

	// AddPoints atomically increments a user's points by delta and returns
	// the updated profile. Returns ErrUserNotFound if no profile exists.
	AddPoints(ctx context.Context, id string, delta int) (*Profile, error)

	// TopByPoints returns up to n profiles ordered by points descending.
	// The order among equal point totals is store-defined.
	TopByPoints(ctx context.Context, n int) ([]Profile, error)
}
