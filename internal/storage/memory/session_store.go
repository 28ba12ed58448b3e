package memory

import (
	"context"
	"sort"
	"sync"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
)

// SessionStore is an in-memory implementation of storage.SessionStore.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Session // keyed by session_id
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]*domain.Session),
	}
}

// Insert adds a new session.
func (s *SessionStore) Insert(_ context.Context, sess *domain.Session) error {
	if sess == nil || sess.SessionID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[sess.SessionID]; exists {
		return storage.ErrDuplicateKey
	}
	sessCopy := *sess
	s.data[sess.SessionID] = &sessCopy
	return nil
}

// GetByID retrieves a copy of the session.
func (s *SessionStore) GetByID(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[sessionID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	sessCopy := *sess
	return &sessCopy, nil
}

// Update replaces an existing session.
func (s *SessionStore) Update(_ context.Context, sess *domain.Session) error {
	if sess == nil || sess.SessionID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[sess.SessionID]; !exists {
		return storage.ErrNotFound
	}
	sessCopy := *sess
	s.data[sess.SessionID] = &sessCopy
	return nil
}

// List returns all sessions ordered by creation time ASC, session ID as
// tie-breaker for deterministic output.
func (s *SessionStore) List(_ context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Session, 0, len(s.data))
	for _, sess := range s.data {
		sessCopy := *sess
		result = append(result, &sessCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].SessionID < result[j].SessionID
	})

	return result, nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, sessionID)
	return nil
}

var _ storage.SessionStore = (*SessionStore)(nil)
