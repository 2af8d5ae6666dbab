package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session state in process memory. Suitable for a single
// storefront instance and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	state    State
	expireAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (State, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return State{}, nil
	}
	if s.ttl > 0 && time.Now().After(entry.expireAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return State{}, nil
	}
	return entry.state, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{
		state:    st,
		expireAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
