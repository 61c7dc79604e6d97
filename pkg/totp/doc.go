// Package totp implements RFC 6238 time-based one-time passwords and the
// supporting material a two-factor enrollment needs: secret key generation,
// provisioning URIs and QR images for authenticator apps, single-use backup
// codes, and AES-256-GCM helpers for persisting secrets encrypted.
//
// # Code validation
//
// ValidateTOTP accepts a code for the current 30-second step or either
// adjacent step to tolerate clock drift between server and device. Every
// candidate window is compared with crypto/subtle and all windows are always
// evaluated, so validation timing carries no information about the secret or
// which window matched. ValidateTOTPAt takes an explicit reference time for
// callers with injected clocks.
//
// # Backup codes
//
// GenerateBackupCodes produces short alphanumeric codes intended to be shown
// once and written down. Only salted SHA-256 hashes are stored
// (HashBackupCodes); ConsumeBackupCode verifies a candidate in constant time
// and returns the stored list with the matched entry removed, making each
// code strictly single-use.
//
// # Secrets at rest
//
// Cipher wraps AES-256-GCM so the raw TOTP secret never reaches the
// persistence layer in plaintext. The key is loaded from the
// TOTP_ENCRYPTION_KEY environment variable via LoadConfig and must be a
// Base64-encoded 32-byte value; cmd/ contains a tiny generator for it.
//
// Every exported operation returns descriptive sentinel errors that can be
// inspected with errors.Is, e.g. ErrInvalidSecret, ErrInvalidCode and
// ErrInvalidBackupCode.
package totp
