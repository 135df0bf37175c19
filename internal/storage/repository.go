// Package storage implements the local key-value store the whole client
// persists into. The store is the single source of truth: in-memory copies
// held by pages and services are disposable projections, and every mutation
// is written back through here before it counts as durable.
package storage

import "context"

// Repository is the raw key-value persistence boundary. Values are opaque
// payloads (JSON in practice); typed access lives in the localdata package.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// List returns all key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Update runs fn against a transactional view of the store. All writes
	// made through the passed Repository become durable together, or not
	// at all.
	Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
