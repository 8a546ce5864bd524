package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a process-local Store used in tests and single-node setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Create(_ context.Context, sess Session) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}
