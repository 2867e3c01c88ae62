package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Manager holds the current partner session and writes it through to a Store.
type Manager struct {
	store  Store
	logger logx.Logger

	mu      sync.RWMutex
	current domain.Session
}

// NewManager creates a manager with an empty session.
func NewManager(store Store, logger logx.Logger) *Manager {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Manager{store: store, logger: logger}
}

// Restore loads the stored session. A stored session wins over bootstrap;
// a non-empty bootstrap is saved when nothing is stored.
func (m *Manager) Restore(ctx context.Context, bootstrap domain.Session) error {
	s, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !s.Authenticated() && bootstrap.Token != "" {
		if err := m.Login(ctx, bootstrap); err != nil {
			return fmt.Errorf("bootstrap session: %w", err)
		}
		return nil
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return nil
}

// Current returns the active session, empty when logged out.
func (m *Manager) Current() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Login replaces the session. Only delivery partners may sign in.
func (m *Manager) Login(ctx context.Context, s domain.Session) error {
	s.Token = strings.TrimSpace(s.Token)
	s.UserID = strings.TrimSpace(s.UserID)
	if s.Role == "" {
		s.Role = domain.RoleDeliveryPartner
	}
	switch {
	case s.Token == "":
		return apperr.Validation("token is required")
	case s.Role != domain.RoleDeliveryPartner:
		return apperr.Validation(fmt.Sprintf("role %q cannot use the partner console", s.Role))
	}

	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info("partner signed in", logx.String("user_id", s.UserID))
	return nil
}

// Logout clears the session.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.mu.Lock()
	prev := m.current
	m.current = domain.Session{}
	m.mu.Unlock()

	m.logger.Info("partner signed out", logx.String("user_id", prev.UserID))
	return nil
}

// Require returns the current session or ErrUnauthenticated.
func (m *Manager) Require() (domain.Session, error) {
	s := m.Current()
	if !s.Authenticated() {
		return domain.Session{}, apperr.ErrUnauthenticated
	}
	return s, nil
}
