package credentials

import (
	"context"
	"sync"
)

// MemoryKeyValueStore is a process-local store for tests and dry runs.
type MemoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
	// Err, when set, is returned from every operation to simulate storage faults.
	Err error
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: map[string]string{}}
}

func (s *MemoryKeyValueStore) GetKey(ctx context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return "", false, s.Err
	}
	v, ok := s.values[name]
	return v, ok, nil
}

func (s *MemoryKeyValueStore) SetKey(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.values[name] = value
	return nil
}

func (s *MemoryKeyValueStore) DeleteKey(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	delete(s.values, name)
	return nil
}
