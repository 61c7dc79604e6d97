package session

import "time"

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets the session store. Defaults to an in-memory store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithConfig replaces the manager configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// CreateOption configures a single Create or Refresh call.
type CreateOption func(*createOptions)

type createOptions struct {
	ttl     time.Duration
	boundIP string
}

// WithTTL overrides the default session lifetime for this call.
func WithTTL(ttl time.Duration) CreateOption {
	return func(o *createOptions) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithBoundIP binds the session to a source address; Validate will reject
// the token when presented from any other address.
func WithBoundIP(addr string) CreateOption {
	return func(o *createOptions) {
		o.boundIP = addr
	}
}
