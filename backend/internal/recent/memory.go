package recent

import (
	"context"
	"sync"
)

// MemoryStore keeps lists in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

func (s *MemoryStore) Get(_ context.Context, clientID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.lists[clientID]...), nil
}

func (s *MemoryStore) Set(_ context.Context, clientID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(ids) == 0 {
		delete(s.lists, clientID)
		return nil
	}
	s.lists[clientID] = append([]string{}, ids...)
	return nil
}
