// Package passpolicy validates candidate passphrases against a fixed
// acceptance policy and scores them for user feedback.
//
// Validation is an ordered pipeline: length bounds, a common-password
// denylist, single-character detection, sequential-run detection and
// repeated-pattern detection. The first failing check wins and is reported
// as a package-level sentinel error, so callers can discriminate with
// errors.Is and surface the reason verbatim to the end user.
//
// StrengthScore is advisory only. It combines passphrase length, character
// class variety and character uniqueness into a 0-100 value intended for
// strength meters; it never influences whether Validate accepts a
// passphrase.
//
// All functions are pure and deterministic with no side effects, which
// keeps the package trivially safe for concurrent use.
package passpolicy
