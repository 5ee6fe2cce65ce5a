// Package recordstore is a small keyed record store so the backing medium
// (in-memory map, Redis, Postgres) is swappable without touching callers.
// There are no transactions: concurrent writers are not coordinated and
// the last writer wins.
package recordstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports a missing record.
var ErrKeyNotFound = errors.New("recordstore: key not found")

// Store persists opaque records by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
