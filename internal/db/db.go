// Package db defines the record store facade consumed by the repositories.
package db

import (
	"context"
	"time"
)

// Store is the record store facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks record store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides keyed JSON record operations.
// Records are opaque to the store; no schema is enforced beyond key lookup.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	// JSONGetMulti fetches many records in one pipelined round-trip.
	// A missing key yields a nil entry at its position, not an error.
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	// DelMulti deletes many keys in one pipelined round-trip.
	DelMulti(ctx context.Context, keys []string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}
