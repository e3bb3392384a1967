package config

import "sync"

// MemoryStore is a Store kept in process memory. It does not survive a
// restart unless the same instance is handed to the next consumer.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[Key]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[Key]string)}
}

// Load returns the stored value for key
func (m *MemoryStore) Load(key Key) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Save overwrites the stored value for key
func (m *MemoryStore) Save(key Key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}

// Clear removes the stored value for key
func (m *MemoryStore) Clear(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}
