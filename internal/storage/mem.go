package storage

import (
	"sync"
)

// MemStore is an in-memory Store used in tests and as a fallback when no
// durable directory is available.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true
}

func (s *MemStore) GetJSON(key string, v any) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	return decodeJSON(data, v) == nil
}

func (s *MemStore) Set(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.data[key] = cp
	s.mu.Unlock()
}

func (s *MemStore) SetJSON(key string, v any) {
	data, err := encodeJSON(v)
	if err != nil {
		return
	}
	s.Set(key, data)
}

func (s *MemStore) GetString(key string) string {
	var v string
	if !s.GetJSON(key, &v) {
		return ""
	}
	return v
}

func (s *MemStore) SetString(key, value string) {
	s.SetJSON(key, value)
}

func (s *MemStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

func (s *MemStore) Remove(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
}
