package session

import (
	"context"
	"time"
)

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token. Expired entries may still be
	// returned; expiry enforcement is the Manager's job.
	Get(ctx context.Context, token string) (*Session, error)

	// Update replaces an existing session.
	Update(ctx context.Context, session *Session) error

	// Delete removes a session by token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all sessions expired relative to now.
	DeleteExpired(ctx context.Context, now time.Time) error

	// DeleteByUsername removes every session for the user and reports how
	// many were removed.
	DeleteByUsername(ctx context.Context, username string) (int, error)
}
