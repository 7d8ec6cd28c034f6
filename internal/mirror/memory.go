package mirror

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemoryStore is a thread-safe in-memory mirror. It is not durable and
// exists for tests and ephemeral deployments.
type MemoryStore struct {
	data   sync.Map
	closed atomic.Bool
}

// NewMemoryStore creates a new memory mirror.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load retrieves a value. Returns a copy to prevent mutation.
func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	val, ok := m.data.Load(key)
	if !ok {
		return nil, ErrMiss
	}
	stored := val.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Save stores a value.
func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	if m.closed.Load() {
		return ErrClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data.Store(key, stored)
	return nil
}

// Delete removes a key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if m.closed.Load() {
		return ErrClosed
	}
	m.data.Delete(key)
	return nil
}

// Close marks the store closed.
func (m *MemoryStore) Close() error {
	m.closed.Store(true)
	return nil
}
