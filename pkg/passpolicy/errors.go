package passpolicy

import "errors"

var (
	// ErrTooShort indicates the passphrase is below the minimum length.
	ErrTooShort = errors.New("passphrase too short")

	// ErrTooLong indicates the passphrase exceeds the maximum length.
	ErrTooLong = errors.New("passphrase too long")

	// ErrTooCommon indicates the passphrase appears on the common-password denylist.
	ErrTooCommon = errors.New("passphrase is too common")

	// ErrTooSimple indicates every character of the passphrase is identical.
	ErrTooSimple = errors.New("passphrase is too simple")

	// ErrSequential indicates the passphrase contains a sequential character run.
	ErrSequential = errors.New("passphrase contains a sequential character run")

	// ErrRepeatedPattern indicates the passphrase is a short pattern repeated to fill its length.
	ErrRepeatedPattern = errors.New("passphrase is a repeated pattern")
)
