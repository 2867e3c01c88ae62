package session

import (
	"context"
	"sync"

	"artmarket-partner-console/internal/domain"
)

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu sync.Mutex
	s  domain.Session
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load(context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *MemoryStore) Save(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = domain.Session{}
	return nil
}

var _ Store = (*MemoryStore)(nil)
