package credstore

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. The salt is explicit and regenerated on every
// passphrase change, so two accounts with the same passphrase never share a
// hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32

	saltSize = 16
)

var errSaltGeneration = errors.New("failed to generate salt")

// generateSalt returns a fresh random passphrase salt.
func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Join(errSaltGeneration, err)
	}
	return salt, nil
}

// hashPassphrase derives the stored hash from a passphrase and salt.
func hashPassphrase(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// verifyPassphrase recomputes the derivation and compares in constant time.
func verifyPassphrase(passphrase string, salt, storedHash []byte) bool {
	computed := hashPassphrase(passphrase, salt)
	return subtle.ConstantTimeCompare(computed, storedHash) == 1
}
