package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no record exists for a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a persistent key-value store holding JSON-encoded records.
// It mirrors the flat record layout the storefront keeps per user:
// one value per scoped key, replaced wholesale on write.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close releases resources held by the store.
	Close() error
}
