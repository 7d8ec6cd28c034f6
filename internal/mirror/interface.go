// Package mirror provides the durable local mirror of the last-known
// site content snapshot, one key per collection.
package mirror

import "context"

// Store defines the interface for mirror backends.
// All implementations must be thread-safe.
// Values are opaque []byte so backends stay serialization-agnostic.
type Store interface {
	// Load retrieves a value from the mirror.
	// Returns ErrMiss if the key has never been saved.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores a value, replacing any previous value for the key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Error represents an error type for mirror operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMiss indicates the key was not found in the mirror.
	ErrMiss Error = "mirror miss"

	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "mirror closed"
)

// Mirror keys, one per content collection. The key space is owned
// exclusively by the site data store.
const (
	KeyEvents      = "cached-events"
	KeyGallery     = "cached-gallery"
	KeyAftermovies = "cached-aftermovies"
	KeySettings    = "cached-settings"
	KeyAbout       = "cached-about"
)
