package store

import (
	"context"
)

// KeyValueStore is the persistence contract of the application: string values
// under string keys, last write wins.
type KeyValueStore interface {
	// Get returns the value under key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	// Close releases the backend
	Close() error
}
