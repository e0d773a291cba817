// Package user provides user profile management and the points ledger.
package user

import (
	"errors"
	"fmt"
	"time"
)

// Repository errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// Profile is a user profile keyed by an opaque user identifier. Profiles are
// created lazily on first access; Points starts at zero and is only ever
// mutated by the prediction-game scoring rule.
type Profile struct {
	ID        string    `bson:"_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Points    int       `bson:"points" json:"points"`
	LastLogin time.Time `bson:"last_login" json:"last_login"`
}

// NewProfile builds the initial profile for a user id: a name derived from
// the id, zero points, and the current instant as last login.
func NewProfile(id string) *Profile {
	return &Profile{
		ID:        id,
		Name:      defaultName(id),
		Points:    0,
		LastLogin: time.Now(),
	}
}

// defaultName derives a display name from the first characters of the id.
func defaultName(id string) string {
	short := id
	if len(short) > 5 {
		short = short[:5]
	}
	return fmt.Sprintf("User_%s", short)
}
