package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is one issued bearer token and its lifetime.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	BoundIP   string    `json:"bound_ip,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiredAt reports whether the session is expired relative to now.
// A session is valid strictly while now is before its expiry.
func (s *Session) ExpiredAt(now time.Time) bool {
	return s != nil && !now.Before(s.ExpiresAt)
}

// BoundTo reports whether the session accepts presentation from sourceAddr.
// Sessions without a bound address accept any source.
func (s *Session) BoundTo(sourceAddr string) bool {
	if s == nil || s.BoundIP == "" {
		return true
	}
	return constantTimeCompare(s.BoundIP, sourceAddr)
}

// constantTimeCompare performs a constant-time string comparison.
func constantTimeCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}
