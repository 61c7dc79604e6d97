package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries the environment-sourced settings for the package. The
// encryption key must be a Base64-encoded 32-byte value suitable for
// AES-256; see GenerateEncodedEncryptionKey and cmd/.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"` // Encryption key for TOTP secrets at rest
}

// LoadConfig parses the package configuration from environment variables.
// The result is cached for the lifetime of the process.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		var c Config
		if err = env.Parse(&c); err != nil {
			return
		}
		if c.EncryptionKey == "" {
			err = ErrEncryptionKeyNotSet
			return
		}
		cfg = c
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
