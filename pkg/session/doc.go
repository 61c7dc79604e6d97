// Package session issues, validates, refreshes and invalidates the opaque
// bearer tokens that stand in for repeated passphrase entry.
//
// A session moves through three states: valid while the clock is before its
// expiry, expired once the expiry passes (the entry may still physically
// exist until swept), and absent once deleted. Validate enforces expiry
// itself and deletes expired entries as a side effect, so a token that has
// reported expired once can never report valid again; the background sweep
// only bounds memory and is never needed for correctness.
//
// Sessions may optionally be bound to the source address they were created
// from, in which case Validate rejects presentations from other addresses
// with ErrIPMismatch.
//
// Storage is pluggable through the Store interface. MemoryStore keeps
// sessions in a mutex-guarded map with a periodic sweep; RedisStore keeps
// them in Redis with native TTL expiry plus a per-user index so
// InvalidateAll stays cheap.
package session
