// Package session carries the per-request user identity. There is no
// authentication design: identities are anonymous, minted on first contact
// and echoed back to the client, which replays them on later requests. The
// session value lives in the request context and is discarded when the
// request ends; no identity state is held at package level.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicit per-request identity object. Profile operations
// read the UserID; nothing else is stored.
type Session struct {
	// UserID is the opaque identifier all user-keyed records hang off.
	UserID string

	// StartedAt is when this session value was created.
	StartedAt time.Time
}

// New creates a session for an already-known user id.
func New(userID string) *Session {
	return &Session{
		UserID:    userID,
		StartedAt: time.Now(),
	}
}

// NewAnonymous mints a fresh anonymous identity.
func NewAnonymous() *Session {
	return New("usr_" + uuid.New().String()[:22])
}
