// Package db defines the key-value persistence contract backing the
// history, saved-search, and filter-preset stores.
package db

import (
	"context"
	"time"
)

// KVStore is the narrow key-value contract consumed by repositories.
type KVStore interface {
	// Get retrieves the value at key. Returns ErrKeyNotFound if absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Del removes key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the full database facade.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}
