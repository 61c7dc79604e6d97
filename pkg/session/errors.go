package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session's expiry has passed.
	ErrSessionExpired = errors.New("session.expired")

	// ErrIPMismatch indicates the token was presented from an address it is not bound to.
	ErrIPMismatch = errors.New("session.ip_mismatch")

	// ErrInvalidSession indicates a malformed session was passed to a store.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
