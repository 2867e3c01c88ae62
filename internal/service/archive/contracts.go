//go:generate mockgen -source=contracts.go -destination=archive_mocks_test.go -package=archive_test

package archive

import (
	"context"

	"artmarket-partner-console/internal/domain"
)

// Store persists finished deliveries.
type Store interface {
	Record(ctx context.Context, t domain.Transition) error
}

type counter interface {
	Inc()
}
