//go:generate mockgen -source=contracts.go -destination=session_mocks_test.go -package=session_test

package session

import (
	"context"

	"artmarket-partner-console/internal/domain"
)

// Store persists the partner session.
type Store interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}
