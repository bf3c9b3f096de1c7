package sessionRepo

import (
	"context"
	"sync"

	"bizbuddy/models"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore returns an in-process Store, used in development and
// tests.
func NewMemorySessionStore() Store {
	return &memorySessionStore{sessions: make(map[string]models.Session)}
}

func (s *memorySessionStore) Get(ctx context.Context, customerID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[customerID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Copy out so callers never alias map-held state.
	out := session
	out.OfferedSlots = append([]string(nil), session.OfferedSlots...)
	return &out, nil
}

func (s *memorySessionStore) Put(ctx context.Context, customerID string, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := *session
	in.OfferedSlots = append([]string(nil), session.OfferedSlots...)
	s.sessions[customerID] = in
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, customerID)
	return nil
}
