package credstore

import (
	"log/slog"
	"time"

	"github.com/hushboard/credkit/pkg/bruteforce"
	"github.com/hushboard/credkit/pkg/totp"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig replaces the store configuration.
func WithConfig(cfg Config) Option {
	return func(s *Store) {
		s.config = cfg
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLoginGuard replaces the login brute-force guard.
func WithLoginGuard(guard *bruteforce.Guard) Option {
	return func(s *Store) {
		if guard != nil {
			s.loginGuard = guard
		}
	}
}

// WithCreationGuard replaces the account-creation throttle.
func WithCreationGuard(guard *bruteforce.Guard) Option {
	return func(s *Store) {
		if guard != nil {
			s.creationGuard = guard
		}
	}
}

// WithCipher sets the cipher used to encrypt TOTP secrets at rest.
// Without one, secrets are stored as generated.
func WithCipher(cipher *totp.Cipher) Option {
	return func(s *Store) {
		s.cipher = cipher
	}
}
