package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. Used by package tests.
type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string][]byte
	revisions map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:      make(map[string][]byte),
		revisions: make(map[string]int64),
	}
}

func (s *MemoryStore) Read(_ context.Context, key string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) Write(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.revisions[key]++
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.revisions[key]++
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Revision(_ context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revisions[key], nil
}
