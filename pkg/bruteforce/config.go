package bruteforce

import "time"

// Config holds brute-force guard settings.
type Config struct {
	// MaxFailures is the failure count at which a source becomes limited.
	MaxFailures int `env:"BRUTEFORCE_MAX_FAILURES" envDefault:"5"`

	// Window is the sliding window duration.
	Window time.Duration `env:"BRUTEFORCE_WINDOW" envDefault:"60s"`

	// CleanupInterval for expired windows (0 to disable the sweep).
	CleanupInterval time.Duration `env:"BRUTEFORCE_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the standard login throttle: 5 failures per minute.
func DefaultConfig() Config {
	return Config{
		MaxFailures:     5,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// CreationConfig returns the account-creation throttle, a much longer
// window than the login guard: one creation per source per day.
func CreationConfig() Config {
	return Config{
		MaxFailures:     1,
		Window:          24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}
