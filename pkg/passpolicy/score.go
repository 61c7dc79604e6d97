package passpolicy

import "unicode"

// StrengthScore estimates passphrase strength on a 0-100 scale for user
// feedback. It combines a capped length term, a character-class variety
// term (10 points per class present) and a unique-character ratio term.
// The score is advisory: Validate alone decides acceptance.
func StrengthScore(passphrase string) int {
	if passphrase == "" {
		return 0
	}

	runes := []rune(passphrase)

	// Length term: 2 points per character, capped at 40.
	score := len(runes) * 2
	if score > 40 {
		score = 40
	}

	var hasLower, hasUpper, hasDigit, hasSymbol, hasSpace bool
	unique := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSpace(r):
			hasSpace = true
		default:
			hasSymbol = true
		}
	}

	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol, hasSpace} {
		if present {
			score += 10
		}
	}

	// Uniqueness term: up to 10 points for all-distinct characters.
	score += len(unique) * 10 / len(runes)

	if score > 100 {
		score = 100
	}
	return score
}
