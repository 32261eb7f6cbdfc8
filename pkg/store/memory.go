package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process backend.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns an empty memory backend.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Name implements Backend.
func (m *Memory) Name() string { return "memory" }

// Get implements Backend.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

// Put implements Backend.
func (m *Memory) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = slices.Clone(data)
	return nil
}

// Delete implements Backend.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

// Close implements Backend.
func (m *Memory) Close() error { return nil }

var _ Backend = (*Memory)(nil)
