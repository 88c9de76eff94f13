package ports

import (
	"context"
	"time"
)

// SessionStore holds per-session dashboard state, the request generation counter
// and the theme preference. State is opaque to the store.
//
// The theme is kept apart from the state so that toggling it never races with
// a lookup writing its outcome.
type SessionStore interface {
	// NextGeneration issues a new, strictly increasing generation for the session
	NextGeneration(ctx context.Context, sessionID string, ttl time.Duration) (uint64, error)
	// Load returns the stored state or a NotFound error
	Load(ctx context.Context, sessionID string) ([]byte, error)
	// SaveIfCurrent stores state only while generation is the latest issued one
	SaveIfCurrent(ctx context.Context, sessionID string, generation uint64, state []byte, ttl time.Duration) (bool, error)
	// ToggleDarkMode atomically flips the theme and returns the new value
	ToggleDarkMode(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	// DarkMode reports the theme, false for unknown sessions
	DarkMode(ctx context.Context, sessionID string) (bool, error)
	Ping(ctx context.Context) error
}
