package passpolicy

import "strings"

const (
	// MinLength is the minimum accepted passphrase length in characters.
	MinLength = 8
	// MaxLength is the maximum accepted passphrase length in characters.
	MaxLength = 256

	// sequenceLength is the window size for sequential-run detection.
	sequenceLength = 3
)

// sequenceSources are the ordered character runs whose 3-character windows
// are rejected anywhere inside a passphrase. Covers alphabetic and numeric
// runs plus the three standard keyboard rows.
var sequenceSources = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// forbiddenSequences holds every lowercase 3-character window drawn from
// sequenceSources, built once at init.
var forbiddenSequences = buildSequences()

func buildSequences() []string {
	var seqs []string
	for _, src := range sequenceSources {
		for i := 0; i+sequenceLength <= len(src); i++ {
			seqs = append(seqs, src[i:i+sequenceLength])
		}
	}
	return seqs
}

// Validate checks a candidate passphrase against the acceptance policy.
// Checks run in a fixed order and the first failure is returned: length
// bounds, common-password denylist, identical characters, sequential runs,
// repeated pattern. A nil return means the passphrase is acceptable.
func Validate(passphrase string) error {
	// Length bounds count characters, not bytes, so multibyte passphrases
	// are not penalized by their encoding.
	n := len([]rune(passphrase))
	if n < MinLength {
		return ErrTooShort
	}
	if n > MaxLength {
		return ErrTooLong
	}
	if commonPasswords[strings.ToLower(passphrase)] {
		return ErrTooCommon
	}
	if allRunesIdentical(passphrase) {
		return ErrTooSimple
	}
	if containsSequence(passphrase) {
		return ErrSequential
	}
	if isRepeatedPattern(passphrase) {
		return ErrRepeatedPattern
	}
	return nil
}

func allRunesIdentical(s string) bool {
	var first rune
	for i, r := range s {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return true
}

func containsSequence(s string) bool {
	lowered := strings.ToLower(s)
	for _, seq := range forbiddenSequences {
		if strings.Contains(lowered, seq) {
			return true
		}
	}
	return false
}

// isRepeatedPattern reports whether the whole string is a pattern of at most
// half its length repeated to fill it, e.g. "abcabcabc" or "xyxyxyxy".
func isRepeatedPattern(s string) bool {
	n := len(s)
	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		if strings.Repeat(s[:p], n/p) == s {
			return true
		}
	}
	return false
}
