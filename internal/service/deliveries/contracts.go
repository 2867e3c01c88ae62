//go:generate mockgen -source=contracts.go -destination=deliveries_mocks_test.go -package=deliveries_test

package deliveries

import (
	"context"

	"artmarket-partner-console/internal/domain"
	partnergw "artmarket-partner-console/internal/gateway/partner"
)

type deliveryGateway interface {
	GetActiveDeliveries(ctx context.Context) (*partnergw.ActiveResponse, error)
	GetPendingDeliveries(ctx context.Context) (*partnergw.PendingResponse, error)
	UpdateDeliveryStatus(ctx context.Context, d domain.DeliveryRequest, status domain.DeliveryStatus) (*partnergw.StatusUpdateResponse, error)
}

// Recorder receives every status transition the backend accepted.
type Recorder interface {
	Record(ctx context.Context, t domain.Transition) error
}

type counter interface {
	Inc()
}
