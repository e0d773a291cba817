package game

import "context"

// Repository defines persistence for the append-only prediction ledger.
type Repository interface {
	// Append stores one prediction outcome. Entries receive auto-assigned
	// identifiers, so distinct appends never collide.
	Append(ctx context.Context, record *PredictionRecord) error
}
