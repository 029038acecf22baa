// Package rediskv provides a Redis-backed Backend over a flat keyspace.
package rediskv

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/endbasic/progstore/backend"
)

var ErrNilClient = errors.New("rediskv: nil client")

// Redis adapts a go-redis client to the Backend contract.
//
// Redis has no positional key access, so Len captures a snapshot of the
// keyspace and Key serves indices out of it. The snapshot is discarded on
// any mutation, which keeps a Len-then-Key enumeration pass consistent as
// long as the database is not written concurrently (the store serializes its
// own access).
type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
	snapshot    []string
}

var _ backend.Backend = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this backend exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil // miss
	}
	if err != nil {
		return "", false, err // transport/server error
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	r.snapshot = nil
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	r.snapshot = nil
	return r.rdb.Del(ctx, key).Err()
}

func (r *Redis) Len(ctx context.Context) (int, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	r.snapshot = keys
	return len(keys), nil
}

func (r *Redis) Key(ctx context.Context, index int) (string, bool, error) {
	if r.snapshot == nil {
		keys, err := r.scanKeys(ctx)
		if err != nil {
			return "", false, err
		}
		r.snapshot = keys
	}
	if index < 0 || index >= len(r.snapshot) {
		return "", false, nil
	}
	return r.snapshot[index], true, nil
}

func (r *Redis) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, "*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Close releases the underlying redis client only when this backend owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (r *Redis) Close(context.Context) error {
	if r.closeClient {
		if err := r.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
