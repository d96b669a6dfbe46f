package session

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is a live session in the in-memory store.
type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is an in-memory Store. Expired entries are dropped lazily
// on resolve.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create establishes a session for userID and returns its token.
func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	token := newToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

// Resolve returns the user id for a token.
func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", ErrNotFound
	}

	return entry.userID, nil
}

// Destroy removes the session.
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
