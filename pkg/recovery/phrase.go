package recovery

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
	// PhraseLength is the number of words in a recovery phrase.
	PhraseLength = 10

	// SaltSize is the length in bytes of the salt mixed into phrase hashes.
	SaltSize = 16
)

// GeneratePhrase draws PhraseLength words uniformly at random from the
// embedded word list. Words may repeat; each draw is independent.
func GeneratePhrase() ([]string, error) {
	max := big.NewInt(int64(len(wordList)))

	words := make([]string, PhraseLength)
	for i := range words {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, errors.Join(ErrFailedToGeneratePhrase, err)
		}
		words[i] = wordList[n.Int64()]
	}
	return words, nil
}

// GenerateSalt returns a fresh random salt for hashing a phrase.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSalt, err)
	}
	return salt, nil
}

// HashPhrase normalizes the word sequence (lowercase, single-space join)
// and returns the hex-encoded salted SHA-256 digest of it.
func HashPhrase(words []string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(normalize(words)))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPhrase recomputes the salted hash of the candidate words and
// compares it against the stored hash in constant time.
func VerifyPhrase(words []string, salt []byte, storedHash string) bool {
	computed := HashPhrase(words, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// ParseInput splits raw user-typed recovery input on whitespace. The result
// must contain exactly PhraseLength words; anything else is rejected before
// hashing is attempted.
func ParseInput(raw string) ([]string, error) {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	if len(words) != PhraseLength {
		return nil, ErrWrongWordCount
	}
	return words, nil
}

func normalize(words []string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(strings.TrimSpace(w))
	}
	return strings.Join(lowered, " ")
}

// WordListSize reports the vocabulary size, exposed for entropy accounting.
func WordListSize() int {
	return len(wordList)
}
