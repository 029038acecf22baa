package progstore

import (
	"context"
	"sort"
	"time"

	"github.com/endbasic/progstore/backend"
	"github.com/endbasic/progstore/entry"
)

// Store is the public surface for stored programs. Names are matched
// case-insensitively and must carry the .BAS extension (in any case);
// passing a name without it is a caller bug and panics.
type Store interface {
	// Get returns the content of the named program. Fails with ErrNotFound
	// when no entry exists, or with a DecodeError when the stored value is
	// corrupt.
	Get(ctx context.Context, name string) (string, error)

	// Put writes a fresh entry for the named program, stamping it with the
	// store's clock. Existing entries are replaced whole.
	Put(ctx context.Context, name, content string) error

	// Delete removes the named program, failing with ErrNotFound when it
	// does not exist. Unrelated backend keys are never touched.
	Delete(ctx context.Context, name string) error

	// Enumerate lists every stored program with its metadata, skipping
	// foreign backend keys. The whole call fails on the first entry that
	// does not decode; corruption is never hidden inside a shorter listing.
	Enumerate(ctx context.Context) (Listing, error)

	// Close releases the backend.
	Close(ctx context.Context) error
}

// Listing maps canonical program names to their metadata.
type Listing map[string]entry.Metadata

// Names returns the listed program names in lexicographic order.
func (l Listing) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options tune the store. Only Backend is required; others have sensible
// defaults.
type Options struct {
	// Required
	Backend backend.Backend

	Clock    Clock          // nil => SystemClock
	Codec    entry.Codec    // nil => entry.JSON (the portable v1 format)
	Logger   Logger         // nil => NopLogger
	Location *time.Location // mtime display offset for listings; nil => time.Local
}

// New validates opts, runs the one-time key migration pass against the
// backend, and returns the store. A migration failure aborts construction:
// a store that cannot canonicalize legacy-cased keys must not serve lookups
// that assume canonical ones.
func New(ctx context.Context, opts Options) (Store, error) {
	return newStore(ctx, opts)
}
