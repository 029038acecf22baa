// Package backend defines the flat key-value abstraction progstore persists
// into.
//
// Implementations MUST be value-transparent: Get must return exactly the
// same string that was previously passed to Set for a key (no prepended or
// appended metadata, no re-encoding, no mutation). Entries must stay put
// until deleted; eviction-based caches do not satisfy this contract.
//
// The keyspace "endbasic-program:" is owned by the store. A backend may hold
// arbitrary foreign keys alongside it; the store recognizes and skips them
// during enumeration.
package backend

import "context"

// Backend is a flat mapping from opaque string keys to opaque string values.
//
// The store serializes its own access, so implementations only need to
// tolerate one caller at a time. Len and Key must be stable enough during a
// single enumeration pass to produce a consistent snapshot of the keyspace.
type Backend interface {
	// Get returns (value, true, nil) on hit and ("", false, nil) on miss.
	// IO/remote failures surface as ("", false, err).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Len returns the number of keys currently held, own and foreign alike.
	Len(ctx context.Context) (int, error)

	// Key returns the key at the given position in [0, Len()). The second
	// result is false when the index no longer resolves to a key.
	Key(ctx context.Context, index int) (string, bool, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
