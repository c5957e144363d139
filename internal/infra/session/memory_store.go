package session

import (
	"context"
	"sync"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
)

type memoryEntry struct {
	state     entity.AuthState
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Entries expire ttl after their last write.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

var _ repository.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Load(_ context.Context, sessionID string) (entity.AuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(sessionID), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, state entity.AuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveLocked(sessionID, state)

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}

func (s *MemoryStore) Update(_ context.Context, sessionID string, fn func(entity.AuthState) (entity.AuthState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.loadLocked(sessionID))
	if next != nil {
		s.saveLocked(sessionID, next)
	}

	return err
}

// Len reports the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()

	return len(s.entries)
}

func (s *MemoryStore) loadLocked(sessionID string) entity.AuthState {
	entry, ok := s.entries[sessionID]
	if !ok {
		return entity.Anonymous{}
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)

		return entity.Anonymous{}
	}

	return entry.state
}

func (s *MemoryStore) saveLocked(sessionID string, state entity.AuthState) {
	if _, anonymous := state.(entity.Anonymous); anonymous {
		delete(s.entries, sessionID)

		return
	}

	s.entries[sessionID] = memoryEntry{
		state:     state,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *MemoryStore) evictExpiredLocked() {
	if s.ttl <= 0 {
		return
	}

	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
