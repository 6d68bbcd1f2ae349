package memory

import (
	"context"
	"sync"

	"sortcheck/internal/audit"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// ListRecent returns up to limit events, most recent first.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 0 {
		limit = 0
	}
	if limit > len(s.events) {
		limit = len(s.events)
	}

	recent := make([]audit.Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		recent = append(recent, s.events[i])
	}
	return recent, nil
}
