package user

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use MongoRepository.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMemoryRepository creates a new in-memory user repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]*Profile),
	}
}

// Get retrieves a profile by user id.
func (r *MemoryRepository) Get(_ context.Context, id string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	cpy := *p
	return &cpy, nil
}

// Create stores a new profile.
func (r *MemoryRepository) Create(_ context.Context, profile *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *profile
	r.profiles[profile.ID] = &cpy
	return nil
}

// AddPoints atomically increments a user's points and returns the updated profile.
func (r *MemoryRepository) AddPoints(_ context.Context, id string, delta int) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	p.Points += delta
	cpy := *p
	return &cpy, nil
}

// TopByPoints returns up to n profiles ordered by points descending.
func (r *MemoryRepository) TopByPoints(_ context.Context, n int) ([]Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		all = append(all, *p)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Points > all[j].Points
	})

	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// Ensure MemoryRepository implements Repository interface.
var _ Repository = (*MemoryRepository)(nil)
