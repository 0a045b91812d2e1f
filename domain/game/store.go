package game

import (
	"sync"
	"time"
)

// Store provides in-memory storage for jackpot sessions.
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewStore creates a new session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create stores a new session.
func (s *Store) Create(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

// GetByID retrieves a session by its ID.
func (s *Store) GetByID(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	// Return a copy to prevent external modifications
	sessionCopy := *session
	return &sessionCopy, nil
}

// Update updates an existing session.
func (s *Store) Update(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; !exists {
		return ErrSessionNotFound
	}

	session.UpdatedAt = time.Now()
	s.sessions[session.ID] = session
	return nil
}

// Count returns the number of stored sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
