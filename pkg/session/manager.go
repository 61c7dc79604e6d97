package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Manager issues and validates session tokens against a Store.
type Manager struct {
	store  Store
	config Config
	now    func() time.Time
}

// New creates a session manager. Without WithStore it uses an in-memory
// store swept at the configured cleanup interval.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	return m
}

// Create mints a new session for the user and returns its opaque token.
func (m *Manager) Create(ctx context.Context, username string, opts ...CreateOption) (string, error) {
	co := createOptions{ttl: m.config.TTL}
	for _, opt := range opts {
		opt(&co)
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := m.now()
	sess := &Session{
		ID:        uuid.New(),
		Token:     token,
		Username:  username,
		BoundIP:   co.boundIP,
		ExpiresAt: now.Add(co.ttl),
		CreatedAt: now,
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return "", err
	}

	return token, nil
}

// Validate checks the token and returns the username it belongs to.
// An expired entry is deleted as a side effect, so a second presentation of
// the same token reports ErrSessionNotFound rather than expired, and can
// never revert to valid. When the session is IP-bound, a mismatched
// sourceAddr yields ErrIPMismatch without consuming the session.
func (m *Manager) Validate(ctx context.Context, token, sourceAddr string) (string, error) {
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			// Store noticed expiry first and already purged the entry.
			return "", ErrSessionExpired
		}
		return "", err
	}

	if sess.ExpiredAt(m.now()) {
		_ = m.store.Delete(ctx, token)
		return "", ErrSessionExpired
	}

	if !sess.BoundTo(sourceAddr) {
		return "", ErrIPMismatch
	}

	return sess.Username, nil
}

// Refresh extends the session's expiry, only while it is still valid.
func (m *Manager) Refresh(ctx context.Context, token string, opts ...CreateOption) error {
	co := createOptions{ttl: m.config.TTL}
	for _, opt := range opts {
		opt(&co)
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return err
	}

	now := m.now()
	if sess.ExpiredAt(now) {
		_ = m.store.Delete(ctx, token)
		return ErrSessionExpired
	}

	sess.ExpiresAt = now.Add(co.ttl)
	return m.store.Update(ctx, sess)
}

// Invalidate removes one session. Idempotent: invalidating an absent token
// is not an error.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// InvalidateAll removes every session belonging to the user and reports the
// count, e.g. after a passphrase change or account recovery.
func (m *Manager) InvalidateAll(ctx context.Context, username string) (int, error) {
	return m.store.DeleteByUsername(ctx, username)
}

// generateToken creates a cryptographically secure opaque token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
