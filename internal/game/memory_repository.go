package game

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use MongoRepository.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []PredictionRecord
}

// NewMemoryRepository creates a new in-memory prediction repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Append stores one prediction outcome.
func (r *MemoryRepository) Append(_ context.Context, record *PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}

// Records returns a copy of all stored records, in append order.
func (r *MemoryRepository) Records() []PredictionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PredictionRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Ensure MemoryRepository implements Repository interface.
var _ Repository = (*MemoryRepository)(nil)
