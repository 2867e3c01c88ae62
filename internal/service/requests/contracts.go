//go:generate mockgen -source=contracts.go -destination=requests_mocks_test.go -package=requests_test

package requests

import (
	"context"

	"artmarket-partner-console/internal/domain"
	partnergw "artmarket-partner-console/internal/gateway/partner"
)

type pendingGateway interface {
	GetPendingDeliveries(ctx context.Context) (*partnergw.PendingResponse, error)
}

// SessionProvider yields the partner accepting requests.
type SessionProvider interface {
	Current() domain.Session
}
