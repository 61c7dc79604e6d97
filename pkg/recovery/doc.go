// Package recovery generates and verifies human-typable recovery phrases.
//
// A recovery phrase is a sequence of words drawn uniformly at random from a
// fixed embedded word list. The plaintext phrase is shown to the account
// owner exactly once; only a salted one-way hash of its normalized form is
// ever stored. Verification recomputes the hash from candidate words and
// compares in constant time.
//
// ParseInput turns raw user input back into a word sequence, tolerating
// arbitrary whitespace but insisting on the exact expected word count so
// that obviously malformed input is rejected before any hashing happens.
package recovery
