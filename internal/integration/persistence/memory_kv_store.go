package persistence

import (
	"context"
	"sync"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// memoryKeyValueStore is the fallback backend used when Redis is not
// reachable. Contents do not survive a restart.
type memoryKeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueStore creates an in-process key-value store.
func NewMemoryKeyValueStore() adapter.KeyValueStore {
	return &memoryKeyValueStore{data: make(map[string]string)}
}

func (s *memoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *memoryKeyValueStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
