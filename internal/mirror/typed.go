package mirror

import (
	"context"
	"encoding/json"
)

// Typed provides type-safe mirror access using generics. It wraps a
// Store and handles JSON serialization. Corrupt payloads are treated as
// a miss, never an error: the mirror is best-effort by contract.
type Typed[T any] struct {
	store Store
	key   string
}

// NewTyped creates a Typed view over one mirror key.
func NewTyped[T any](store Store, key string) *Typed[T] {
	return &Typed[T]{store: store, key: key}
}

// Load retrieves the stored value. Returns the value and true if present
// and decodable, zero value and false otherwise.
func (t *Typed[T]) Load(ctx context.Context) (T, bool) {
	var value T
	data, err := t.store.Load(ctx, t.key)
	if err != nil {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false
	}
	return value, true
}

// Save serializes and stores the value.
func (t *Typed[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return t.store.Save(ctx, t.key, data)
}
