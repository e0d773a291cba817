package weather

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use MongoRepository.
type MemoryRepository struct {
	mu      sync.RWMutex
	current map[string]Snapshot
	history []HistoricalRecord
}

// NewMemoryRepository creates a new in-memory weather repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		current: make(map[string]Snapshot),
	}
}

// UpsertCurrent overwrites the current-weather record for a city key.
func (r *MemoryRepository) UpsertCurrent(_ context.Context, key string, snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current[key] = snap
	return nil
}

// AppendHistory adds one immutable history entry for a city key.
func (r *MemoryRepository) AppendHistory(_ context.Context, key string, snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, HistoricalRecord{CityKey: key, Snapshot: snap})
	return nil
}

// ListCurrent returns the latest snapshot for every city.
func (r *MemoryRepository) ListCurrent(_ context.Context) (map[string]Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Snapshot, len(r.current))
	for key, snap := range r.current {
		out[key] = snap
	}
	return out, nil
}

// QueryHistory returns history entries within the window, ascending by LastUpdate.
func (r *MemoryRepository) QueryHistory(_ context.Context, key string, windowDays int) ([]Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	since := time.Now().AddDate(0, 0, -windowDays)

	snaps := make([]Snapshot, 0)
	for _, rec := range r.history {
		if rec.CityKey != key {
			continue
		}
		if rec.Snapshot.LastUpdate.Before(since) {
			continue
		}
		snaps = append(snaps, rec.Snapshot)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].LastUpdate.Before(snaps[j].LastUpdate)
	})

	return snaps, nil
}

// DeleteCity removes the current record and all history entries for a key.
func (r *MemoryRepository) DeleteCity(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.current, key)

	kept := r.history[:0]
	for _, rec := range r.history {
		if rec.CityKey != key {
			kept = append(kept, rec)
		}
	}
	r.history = kept
	return nil
}

// Ensure MemoryRepository implements Repository interface.
var _ Repository = (*MemoryRepository)(nil)
