package storage

import (
	"context"
	"maps"
	"moodtracker/internal/storage/interfaces"
	"sync"
)

const DriverMemory = "memory"

// MemoryStore keeps every key in process memory. Pair it with a Scheduler
// to survive restarts.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) SetMany(_ context.Context, entries []interfaces.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.data[e.Key] = e.Value
	}
	return nil
}

func (m *MemoryStore) Name() string {
	return DriverMemory
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) Dump() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// Load replaces the whole content of the store.
func (m *MemoryStore) Load(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = maps.Clone(entries)
	if m.data == nil {
		m.data = make(map[string]string)
	}
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
