package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// Documents are kept as marshaled JSON so that Load always hands back an
// independent copy, never a shared reference.
type MemoryStore struct {
	mu sync.RWMutex

	// key: collection key, value: JSON document
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(key string, out any) error {
	s.mu.RLock()
	doc, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(doc, out)
}

func (s *MemoryStore) Save(key string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = doc
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
