package sessions

import (
	"context"
	"sync"

	"github.com/randomtoy/pairs-go/internal/domain"
	"github.com/randomtoy/pairs-go/internal/ports"
)

// MemoryStore keeps sessions in process memory. Games do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session)}
}

func (s *MemoryStore) Save(_ context.Context, gameID string, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[gameID] = sess
	return nil
}

func (s *MemoryStore) Get(_ context.Context, gameID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[gameID]
	if !ok {
		return nil, ports.ErrGameNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, gameID)
	return nil
}

// Len returns the number of live games.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
