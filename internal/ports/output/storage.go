package output

import "context"

// KeyValueStore is durable local storage addressed by string keys.
type KeyValueStore interface {
	// Get returns the value stored under key, or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
