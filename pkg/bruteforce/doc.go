// Package bruteforce implements a sliding-window failure counter used to
// throttle repeated authentication attempts per source address.
//
// Keys are SHA-256 hashes of the source address (HashSource), never the raw
// address, which bounds memory per key and keeps identifying data out of the
// process in plaintext. A window opens on the first recorded failure and
// lives for a fixed duration; once the failure count inside a live window
// reaches the configured maximum, IsLimited reports true until the window
// expires. A successful authentication must call Clear so a stale count can
// never cause a later false lockout.
//
// Expired windows are treated as absent everywhere regardless of their
// count, and an optional background sweep deletes them to bound memory.
// The clock is injectable so tests never sleep.
package bruteforce
