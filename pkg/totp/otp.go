package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the code length produced and accepted (RFC 6238 standard).
	Digits = 6
	// Period is the time-step size in seconds (RFC 6238 standard).
	Period = 30
	// SecretSize is the raw secret length in bytes (RFC 4226 recommendation).
	SecretSize = 20
)

// secretKeyRegex enforces Base32 format: uppercase A-Z, digits 2-7, optional padding.
var secretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

// codeRegex matches a well-formed user-supplied code.
var codeRegex = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, Digits))

// GenerateSecretKey generates a new Base32-encoded 160-bit TOTP secret.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// ValidateTOTP reports whether the user-supplied code matches the secret for
// the current time step or either adjacent step (clock-skew tolerance).
// All three windows are always evaluated and each candidate is compared in
// constant time, so response timing does not reveal which window matched.
func ValidateTOTP(secret, code string) (bool, error) {
	return ValidateTOTPAt(secret, code, time.Now())
}

// ValidateTOTPAt is ValidateTOTP evaluated against an explicit reference
// time, for callers with injected clocks and for tests that must not race
// the wall clock.
func ValidateTOTPAt(secret, code string, at time.Time) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCode
	}

	counter := at.Unix() / Period

	matched := 0
	for i := int64(-1); i <= 1; i++ {
		candidate := fmt.Sprintf("%0*d", Digits, generateHOTP(key, counter+i))
		matched |= subtle.ConstantTimeCompare([]byte(candidate), []byte(code))
	}

	return matched == 1, nil
}

// GenerateTOTP generates the code for the current time step.
func GenerateTOTP(secret string) (string, error) {
	return GenerateTOTPAt(secret, time.Now())
}

// GenerateTOTPAt generates the code for the time step containing at.
func GenerateTOTPAt(secret string, at time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", Digits, generateHOTP(key, at.Unix()/Period)), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !secretKeyRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// generateHOTP implements the RFC 4226 HMAC-based one-time password
// algorithm: HMAC-SHA1 over the big-endian counter, dynamic truncation,
// reduction to Digits decimal digits.
func generateHOTP(key []byte, counter int64) int {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation: last 4 bits select the offset, MSB cleared to
	// keep the extracted value positive.
	offset := sum[len(sum)-1] & 0x0f
	value := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		int(sum[offset+3]&0xff)

	return value % int(math.Pow10(Digits))
}
