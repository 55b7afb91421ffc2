package store_test

import (
	"context"
	"sync"

	"taskplanner/internal/core/ports"
)

// memKV is an in-memory stand-in for the sqlite mirror.
type memKV struct {
	mu     sync.Mutex
	values map[string]string
}

var _ ports.KVStore = (*memKV)(nil)

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
