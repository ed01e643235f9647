package store

import (
	"sync"
)

// MemoryStore is an in-memory [KeyValueStore]. The zero value is ready to
// use.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

var _ KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get implements [KeyValueStore].
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.m[key]
	if !ok {
		return nil, ErrNoSuchKey
	}
	return append([]byte(nil), value...), nil
}

// Set implements [KeyValueStore].
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m == nil {
		s.m = make(map[string][]byte)
	}
	s.m[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements [KeyValueStore].
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}
