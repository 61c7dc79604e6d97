// Package credstore manages account credentials for the platform: passphrase
// registration and verification, the two-step TOTP enrollment lifecycle,
// single-use recovery phrases and creation throttling.
//
// The store keeps one record per lowercased username in a pluggable Storage
// collaborator (in-memory and PostgreSQL implementations are provided).
// Passphrases are hashed with argon2id under a per-record random salt and
// records returned to callers are always sanitized, so no hash, salt or
// TOTP material ever leaves the package.
//
// Authentication failures are deliberately uniform. Unknown usernames and
// wrong passphrases produce the same error with matched timing, and repeated
// failures from one source address trip a sliding-window guard before any
// record is even looked up.
//
// # Usage
//
//	store, err := credstore.New(credstore.NewMemoryStorage(),
//	    credstore.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	record, recoveryWords, err := store.Create(ctx, "alice", passphrase, clientAddr, credstore.Profile{})
//	if err != nil {
//	    // handle credstore.ErrUsernameTaken, credstore.ErrWeakPassphrase, ...
//	}
//	// recoveryWords are shown to the user exactly once.
//
//	record, err = store.Authenticate(ctx, "alice", passphrase, clientAddr)
//
// Two-factor enrollment is a setup/confirm pair. SetupTOTP stages a secret
// and backup codes in pending fields without changing the account's
// effective state; ConfirmTOTP promotes them once the user proves their
// authenticator produces matching codes.
package credstore
