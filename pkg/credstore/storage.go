package credstore

import "context"

// Storage is the keyed persistence collaborator holding credential records.
// Keys are lowercased usernames. Implementations must provide
// read-your-writes consistency within a single process; durability is the
// implementation's concern, not the store's.
type Storage interface {
	// Get returns the record for the key, or ErrRecordNotFound.
	Get(ctx context.Context, key string) (*Record, error)

	// Put stores or replaces the record under the key.
	Put(ctx context.Context, key string, record *Record) error

	// Delete removes the record. Returns ErrRecordNotFound for absent keys.
	Delete(ctx context.Context, key string) error

	// Fold iterates every record, threading an accumulator through fn.
	// Iteration order is unspecified.
	Fold(ctx context.Context, acc any, fn func(acc any, record *Record) any) (any, error)
}
