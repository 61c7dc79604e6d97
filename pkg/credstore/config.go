package credstore

// Config holds credential store settings.
type Config struct {
	// MinUsernameLen and MaxUsernameLen bound display usernames.
	MinUsernameLen int `env:"CRED_MIN_USERNAME_LEN" envDefault:"3"`
	MaxUsernameLen int `env:"CRED_MAX_USERNAME_LEN" envDefault:"30"`

	// Issuer names the platform inside authenticator apps.
	Issuer string `env:"CRED_TOTP_ISSUER" envDefault:"Hushboard"`
}

// DefaultConfig returns the standard credential store configuration.
func DefaultConfig() Config {
	return Config{
		MinUsernameLen: 3,
		MaxUsernameLen: 30,
		Issuer:         "Hushboard",
	}
}
