package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
)

const (
	// BackupCodeCount is the number of codes issued per enrollment.
	BackupCodeCount = 10
	// BackupCodeLength is the character length of each backup code.
	BackupCodeLength = 10

	// backupCodeCharset omits ambiguous characters (0/O, 1/I/L) so codes
	// survive being read off paper.
	backupCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// BackupSaltSize is the length in bytes of the salt mixed into code hashes.
	BackupSaltSize = 16
)

// GenerateBackupCodes creates count single-use backup codes. Each code is a
// short random alphanumeric string meant to be printed or written down.
func GenerateBackupCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidBackupCodeCount
	}

	charsetLen := big.NewInt(int64(len(backupCodeCharset)))
	codes := make([]string, count)
	for i := 0; i < count; i++ {
		var b strings.Builder
		b.Grow(BackupCodeLength)
		for j := 0; j < BackupCodeLength; j++ {
			n, err := rand.Int(rand.Reader, charsetLen)
			if err != nil {
				return nil, errors.Join(ErrFailedToGenerateBackupCode, err)
			}
			b.WriteByte(backupCodeCharset[n.Int64()])
		}
		codes[i] = b.String()
	}
	return codes, nil
}

// GenerateBackupSalt returns a fresh random salt for hashing backup codes.
func GenerateBackupSalt() ([]byte, error) {
	salt := make([]byte, BackupSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Join(ErrFailedToGenerateBackupCode, err)
	}
	return salt, nil
}

// HashBackupCode returns the hex-encoded salted SHA-256 digest of a
// normalized (trimmed, uppercased) backup code. Only hashes are ever
// persisted; plaintext codes exist solely at issuance time.
func HashBackupCode(code string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(normalizeBackupCode(code)))
	return hex.EncodeToString(h.Sum(nil))
}

// HashBackupCodes hashes every code in the batch with the same salt.
func HashBackupCodes(codes []string, salt []byte) []string {
	hashed := make([]string, len(codes))
	for i, code := range codes {
		hashed[i] = HashBackupCode(code, salt)
	}
	return hashed
}

// ConsumeBackupCode checks a candidate code against the stored hash list and,
// on a match, returns the list with that single entry removed so the code can
// never be used again. The scan always visits every stored hash and compares
// in constant time. Returns ErrInvalidBackupCode when nothing matches.
func ConsumeBackupCode(code string, salt []byte, hashed []string) ([]string, error) {
	computed := []byte(HashBackupCode(code, salt))

	matchIdx := -1
	for i, h := range hashed {
		if subtle.ConstantTimeCompare(computed, []byte(h)) == 1 && matchIdx < 0 {
			matchIdx = i
		}
	}

	if matchIdx < 0 {
		return nil, ErrInvalidBackupCode
	}

	remaining := make([]string, 0, len(hashed)-1)
	remaining = append(remaining, hashed[:matchIdx]...)
	remaining = append(remaining, hashed[matchIdx+1:]...)
	return remaining, nil
}

func normalizeBackupCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
