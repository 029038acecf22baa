package progstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/endbasic/progstore/backend"
	"github.com/endbasic/progstore/entry"
	"github.com/endbasic/progstore/internal/key"
)

type store struct {
	b     backend.Backend
	clock Clock
	codec entry.Codec
	log   Logger
	loc   *time.Location
}

func newStore(ctx context.Context, opts Options) (*store, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("progstore: backend is required")
	}

	s := &store{b: opts.Backend}

	// defaults
	s.clock = coalesce[Clock](opts.Clock, SystemClock{})
	s.codec = coalesce[entry.Codec](opts.Codec, entry.JSON{})
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.loc = coalesce[*time.Location](opts.Location, time.Local)

	if err := s.fixupKeys(ctx); err != nil {
		return nil, fmt.Errorf("progstore: key migration failed: %w", err)
	}
	return s, nil
}

// fixupKeys upgrades the backend to case-insensitive naming: every key whose
// name is not in canonical (upper-cased) form is renamed to it. Runs exactly
// once, before the store serves any request.
//
// Rename targets are collected first and applied after the scan; deleting
// keys mid-scan would shift backend indices and could skip entries.
func (s *store) fixupKeys(ctx context.Context) error {
	n, err := s.b.Len(ctx)
	if err != nil {
		return &BackendError{Op: "len", Err: err}
	}

	type rename struct {
		old, canon key.Key
	}
	var renames []rename
	for i := 0; i < n; i++ {
		raw, ok, err := s.b.Key(ctx, i)
		if err != nil {
			return &BackendError{Op: "key", Key: strconv.Itoa(i), Err: err}
		}
		if !ok {
			return &BackendError{Op: "key", Key: strconv.Itoa(i), Err: errors.New("entry vanished during scan")}
		}
		k, ok := key.Parse(raw)
		if !ok {
			continue
		}
		if canon := k.Canonical(); k != canon {
			renames = append(renames, rename{old: k, canon: canon})
		}
	}

	for _, r := range renames {
		if err := s.rename(ctx, r.old, r.canon); err != nil {
			return err
		}
		s.log.Debug("renamed legacy-cased key", Fields{"old": r.old.String(), "new": r.canon.String()})
	}
	if len(renames) > 0 {
		s.log.Info("canonicalized legacy keys", Fields{"count": len(renames)})
	}
	return nil
}

// rename copies old's value under canon before deleting old. An interruption
// between the two writes can duplicate an entry but never lose one.
func (s *store) rename(ctx context.Context, old, canon key.Key) error {
	raw, ok, err := s.b.Get(ctx, old.String())
	if err != nil {
		return &BackendError{Op: "get", Key: old.String(), Err: err}
	}
	if !ok {
		return fmt.Errorf("program %q: %w", old.Name(), ErrNotFound)
	}
	if err := s.b.Set(ctx, canon.String(), raw); err != nil {
		return &BackendError{Op: "set", Key: canon.String(), Err: err}
	}
	if err := s.b.Delete(ctx, old.String()); err != nil {
		return &BackendError{Op: "delete", Key: old.String(), Err: err}
	}
	return nil
}

// getEntry fetches and decodes the entry under k, validating its schema
// version.
func (s *store) getEntry(ctx context.Context, k key.Key) (entry.Entry, error) {
	raw, ok, err := s.b.Get(ctx, k.String())
	if err != nil {
		return entry.Entry{}, &BackendError{Op: "get", Key: k.String(), Err: err}
	}
	if !ok {
		return entry.Entry{}, fmt.Errorf("program %q: %w", k.Name(), ErrNotFound)
	}
	e, err := s.codec.Decode(raw)
	if err != nil {
		return entry.Entry{}, &DecodeError{Key: k.String(), Err: err}
	}
	if e.Version != entry.SchemaVersion {
		return entry.Entry{}, &DecodeError{Key: k.String(), Version: e.Version}
	}
	return e, nil
}

func (s *store) Get(ctx context.Context, name string) (string, error) {
	e, err := s.getEntry(ctx, key.ForName(name))
	if err != nil {
		return "", err
	}
	return e.Content, nil
}

func (s *store) Put(ctx context.Context, name, content string) error {
	k := key.ForName(name)

	// Nothing in the old entry matters, so the new one replaces it whole.
	e := entry.New(content, s.clock.Now())
	raw, err := s.codec.Encode(e)
	if err != nil {
		return fmt.Errorf("encode entry for %q: %w", k.Name(), err)
	}
	if err := s.b.Set(ctx, k.String(), raw); err != nil {
		return &BackendError{Op: "set", Key: k.String(), Err: err}
	}
	return nil
}

func (s *store) Delete(ctx context.Context, name string) error {
	k := key.ForName(name)

	_, ok, err := s.b.Get(ctx, k.String())
	if err != nil {
		// Best effort: attempt the deletion anyway.
		s.log.Warn("existence check failed before delete", Fields{"key": k.String(), "err": err})
	} else if !ok {
		return fmt.Errorf("program %q: %w", k.Name(), ErrNotFound)
	}

	if err := s.b.Delete(ctx, k.String()); err != nil {
		return &BackendError{Op: "delete", Key: k.String(), Err: err}
	}
	return nil
}

func (s *store) Enumerate(ctx context.Context) (Listing, error) {
	n, err := s.b.Len(ctx)
	if err != nil {
		return nil, &BackendError{Op: "len", Err: err}
	}

	listing := make(Listing)
	for i := 0; i < n; i++ {
		raw, ok, err := s.b.Key(ctx, i)
		if err != nil {
			return nil, &BackendError{Op: "key", Key: strconv.Itoa(i), Err: err}
		}
		if !ok {
			return nil, &BackendError{Op: "key", Key: strconv.Itoa(i), Err: errors.New("entry vanished during enumeration")}
		}
		k, ok := key.Parse(raw)
		if !ok {
			continue // foreign key sharing the backend
		}
		e, err := s.getEntry(ctx, k)
		if err != nil {
			return nil, err
		}
		listing[k.Name()] = e.Metadata(s.loc)
	}
	return listing, nil
}

func (s *store) Close(ctx context.Context) error {
	return s.b.Close(ctx)
}
