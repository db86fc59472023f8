package game

import (
	"context"
	"sync"
)

// MemoryPersister keeps snapshots in process memory. Used by tests and the
// in-memory server mode.
type MemoryPersister struct {
	mu       sync.Mutex
	payloads map[string][]byte
	saves    int
	// FailSave, when set, is returned by every Save.
	FailSave error
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{payloads: make(map[string][]byte)}
}

func (m *MemoryPersister) Load(_ context.Context, storeName string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payloads[storeName]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), p...), nil
}

func (m *MemoryPersister) Save(_ context.Context, storeName string, _ int, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.payloads[storeName] = append([]byte(nil), payload...)
	m.saves++
	return nil
}

// Put seeds a raw payload, bypassing encoding.
func (m *MemoryPersister) Put(storeName string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads[storeName] = append([]byte(nil), payload...)
}

// Saves reports how many successful saves happened.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
