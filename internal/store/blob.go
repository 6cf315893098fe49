package store

import (
	"context"
	"sync"
)

// Blob is a key-value store holding opaque values
type Blob interface {
	// Get returns the value for key. found is false when key was never set.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the value for key
	Set(ctx context.Context, key string, value []byte) error

	// Close releases resources held by the backend
	Close() error
}

// MemoryBlob keeps values in a map
type MemoryBlob struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryBlob creates an empty in-memory blob store
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (m *MemoryBlob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores a copy of value
func (m *MemoryBlob) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Close does nothing
func (m *MemoryBlob) Close() error {
	return nil
}
