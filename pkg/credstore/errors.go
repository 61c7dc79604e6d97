package credstore

import "errors"

var (
	// ErrRecordNotFound indicates no credential record exists for the username.
	// Returned only by operations with no enumeration risk (admin paths,
	// already-authenticated flows); Authenticate never distinguishes it from
	// a wrong passphrase.
	ErrRecordNotFound = errors.New("credential record not found")

	// ErrUsernameTaken indicates the lowercased username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidUsername indicates the username shape is not allowed.
	ErrInvalidUsername = errors.New("username must start with a letter and contain only letters, digits and underscores")

	// ErrUsernameTooShort indicates the username is below the minimum length.
	ErrUsernameTooShort = errors.New("username too short")

	// ErrUsernameTooLong indicates the username exceeds the maximum length.
	ErrUsernameTooLong = errors.New("username too long")

	// ErrWeakPassphrase wraps the passpolicy reason for a rejected passphrase.
	ErrWeakPassphrase = errors.New("passphrase rejected by policy")

	// ErrInvalidCredentials is the uniform failure for wrong passphrase and
	// unknown username alike, to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTooManyAttempts indicates the source address is currently throttled
	// by the login brute-force guard.
	ErrTooManyAttempts = errors.New("too many failed attempts")

	// ErrRateLimited indicates the source address exceeded the account
	// creation throttle.
	ErrRateLimited = errors.New("account creation rate limited")

	// ErrTOTPAlreadyEnabled indicates two-factor auth is already active.
	ErrTOTPAlreadyEnabled = errors.New("totp already enabled")

	// ErrNoPendingTOTP indicates confirm was called without a prior setup.
	ErrNoPendingTOTP = errors.New("no pending totp setup")

	// ErrTOTPNotEnabled indicates a TOTP operation on an account without
	// active two-factor auth.
	ErrTOTPNotEnabled = errors.New("totp not enabled")

	// ErrInvalidTOTPCode is the uniform failure for a wrong TOTP or backup code.
	ErrInvalidTOTPCode = errors.New("invalid totp code")

	// ErrNoRecoveryAvailable indicates the record carries no recovery hash.
	ErrNoRecoveryAvailable = errors.New("no recovery phrase available")

	// ErrInvalidRecoveryPhrase indicates the supplied words do not match the
	// stored recovery hash.
	ErrInvalidRecoveryPhrase = errors.New("invalid recovery phrase")

	// ErrPersistence wraps storage collaborator failures. Never retried;
	// always surfaced synchronously to the caller.
	ErrPersistence = errors.New("credential persistence failed")
)
