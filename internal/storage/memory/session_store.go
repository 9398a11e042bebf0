// Package memory provides in-memory store implementations.
package memory

import (
	"context"
	"sort"
	"sync"

	"recruiting-lab/internal/storage"
)

// SessionStore is an in-memory implementation of storage.SessionStore.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]*storage.SessionRecord // keyed by session ID
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]*storage.SessionRecord),
	}
}

// Insert adds a new session. Returns ErrDuplicateKey if the ID exists.
func (s *SessionStore) Insert(_ context.Context, r *storage.SessionRecord) error {
	if r == nil || r.ID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.ID]; exists {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation
	s.data[r.ID] = r.Clone()
	return nil
}

// Get retrieves a session by ID. Returns ErrNotFound if not exists.
func (s *SessionStore) Get(_ context.Context, id string) (*storage.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[id]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return r.Clone(), nil
}

// Update replaces an existing session. Returns ErrNotFound if not exists.
func (s *SessionStore) Update(_ context.Context, r *storage.SessionRecord) error {
	if r == nil || r.ID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.ID]; !exists {
		return storage.ErrNotFound
	}
	s.data[r.ID] = r.Clone()
	return nil
}

// Delete removes a session. Returns ErrNotFound if not exists.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[id]; !exists {
		return storage.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// List returns all sessions ordered by CreatedAt ASC, then ID.
func (s *SessionStore) List(_ context.Context) ([]*storage.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*storage.SessionRecord, 0, len(s.data))
	for _, r := range s.data {
		result = append(result, r.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.SessionStore = (*SessionStore)(nil)
