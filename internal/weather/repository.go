package weather

import "context"

// Repository defines persistence for current and historical weather records.
// Keys are canonical city keys produced by pkg/cityname; callers must not
// pass raw user input.
type Repository interface {
	// UpsertCurrent overwrites the current-weather record for a city key.
	// Last write wins; there is no optimistic concurrency control.
	UpsertCurrent(ctx context.Context, key string, snap Snapshot) error

	// AppendHistory adds one immutable history entry for a city key.
	// Entries receive auto-assigned identifiers, so distinct appends never
	// collide.
	AppendHistory(ctx context.Context, key string, snap Snapshot) error

	// ListCurrent returns the latest snapshot for every city that has a
	// current-weather record. Iteration order carries no meaning.
	ListCurrent(ctx context.Context) (map[string]Snapshot, error)

	// QueryHistory returns the history entries for a city key whose
	// LastUpdate falls within the past windowDays days, ascending by
	// LastUpdate. An empty window yields an empty slice, not an error.
	QueryHistory(ctx context.Context, key string, windowDays int) ([]Snapshot, error)

	// DeleteCity removes the current-weather record and every history entry
	// for a city key. The two deletions are not transactional: a failure
	// after the first completed is reported as *PartialDeleteError, and the
	// call is safe to re-invoke because both deletes are idempotent.
	DeleteCity(ctx context.Context, key string) error
}
