package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// TTL is the default session lifetime.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// CleanupInterval for expired sessions (0 to disable the sweep).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		TTL:             30 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}
