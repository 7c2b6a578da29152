package storage

import (
	"context"
	"sync"

	"github.com/jwebster45206/realm-engine/pkg/engine"
)

// MemoryStore keeps save snapshots in process memory. It backs the
// console when no Redis address is configured, and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	saves      map[string][]byte
	readError  error
	writeError error
}

// Ensure MemoryStore implements the engine's Store interface
var _ engine.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		saves: make(map[string][]byte),
	}
}

// SetReadError configures Read to fail with the given error.
func (m *MemoryStore) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readError = err
}

// SetWriteError configures Write to fail with the given error.
func (m *MemoryStore) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// Read returns the stored snapshot, or nil when the key is absent.
func (m *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.readError != nil {
		return nil, m.readError
	}
	data, ok := m.saves[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of the snapshot under key.
func (m *MemoryStore) Write(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeError != nil {
		return m.writeError
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.saves[key] = stored
	return nil
}

// Len reports the number of stored snapshots.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.saves)
}
