// Package memory provides an in-memory Backend. It is the reference
// implementation of the contract and the backend of choice for tests.
package memory

import (
	"context"
	"sync"

	"github.com/endbasic/progstore/backend"
)

// Memory is a map-backed Backend with insertion-ordered key enumeration.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	keys   []string // insertion order; parallel to values
}

var _ backend.Backend = (*Memory)(nil)

// New returns an empty in-memory backend.
func New() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; !ok {
		return nil
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys), nil
}

func (m *Memory) Key(_ context.Context, index int) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.keys) {
		return "", false, nil
	}
	return m.keys[index], true, nil
}

func (m *Memory) Close(context.Context) error { return nil }
