// Package memory provides the in-memory store implementation.
// It is the default backend: two maps guarded by a single RWMutex,
// with check-and-insert semantics for both unique keys.
package memory

import (
	"context"
	"sync"

	"github.com/tinyapp/tinyapp/internal/model"
	"github.com/tinyapp/tinyapp/internal/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*model.User // keyed by user id
	usersByEmail map[string]string      // email -> user id
	urls         map[string]*model.URL  // keyed by short code
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[string]*model.User),
		usersByEmail: make(map[string]string),
		urls:         make(map[string]*model.URL),
	}
}

// CreateUser inserts a new user, failing with store.ErrEmailExists when
// the email is taken. The email check and the insert happen under one
// critical section.
func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByEmail[user.Email]; taken {
		return store.ErrEmailExists
	}

	u := *user
	s.users[u.ID] = &u
	s.usersByEmail[u.Email] = u.ID
	return nil
}

// GetUserByID returns the user with the given id.
func (s *Store) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// GetUserByEmail returns the user with the given email (exact match).
func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

// CreateURL inserts a new URL record, failing with store.ErrCodeExists
// when the short code is taken. This is the serialization point for the
// code generator's collision retry loop.
func (s *Store) CreateURL(_ context.Context, url *model.URL) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.urls[url.ShortCode]; taken {
		return store.ErrCodeExists
	}

	s.urls[url.ShortCode] = url.Clone()
	return nil
}

// GetURL returns the record for the short code.
func (s *Store) GetURL(_ context.Context, shortCode string) (*model.URL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.urls[shortCode]
	if !ok {
		return nil, store.ErrURLNotFound
	}
	return u.Clone(), nil
}

// UpdateURL overwrites the record for url.ShortCode.
func (s *Store) UpdateURL(_ context.Context, url *model.URL) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.urls[url.ShortCode]; !ok {
		return store.ErrURLNotFound
	}

	s.urls[url.ShortCode] = url.Clone()
	return nil
}

// DeleteURL removes the record for the short code.
func (s *Store) DeleteURL(_ context.Context, shortCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.urls[shortCode]; !ok {
		return store.ErrURLNotFound
	}

	delete(s.urls, shortCode)
	return nil
}

// ListURLsByOwner returns all records owned by ownerID keyed by short code.
// The whole map is read under the lock so a listing never observes a
// half-applied mutation.
func (s *Store) ListURLsByOwner(_ context.Context, ownerID string) (map[string]*model.URL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*model.URL)
	for code, u := range s.urls {
		if u.OwnerID == ownerID {
			result[code] = u.Clone()
		}
	}
	return result, nil
}

// Ping always succeeds for the in-memory backend.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error {
	return nil
}
