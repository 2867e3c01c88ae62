package deliveries

import (
	"context"
	"errors"
	"fmt"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Feed loads the partner's active deliveries.
type Feed struct {
	gw        deliveryGateway
	logger    logx.Logger
	fallbacks counter
}

// NewFeed creates a Feed; fallbacks may be nil.
func NewFeed(gw deliveryGateway, logger logx.Logger, fallbacks counter) *Feed {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Feed{gw: gw, logger: logger, fallbacks: fallbacks}
}

// Active fetches the active list from the primary endpoint and, if that fails,
// makes exactly one call to the legacy pending endpoint.
// Only deliveries with an active status are returned.
func (f *Feed) Active(ctx context.Context) ([]domain.DeliveryRequest, error) {
	resp, err := f.gw.GetActiveDeliveries(ctx)
	if err == nil {
		items := make([]domain.DeliveryRequest, 0, len(resp.Requests))
		for _, r := range resp.Requests {
			items = append(items, FromActive(r))
		}
		return onlyActive(items), nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("active deliveries: %w", err)
	}

	f.logger.Warn("active deliveries endpoint failed, using legacy endpoint", logx.Err(err))
	if f.fallbacks != nil {
		f.fallbacks.Inc()
	}

	legacy, lerr := f.gw.GetPendingDeliveries(ctx)
	if lerr != nil {
		f.logger.Error("legacy deliveries endpoint failed", logx.Err(lerr))
		return nil, errors.Join(
			fmt.Errorf("active deliveries: %w", err),
			fmt.Errorf("legacy deliveries: %w", lerr),
		)
	}
	return onlyActive(FromPending(legacy.Data)), nil
}

func onlyActive(items []domain.DeliveryRequest) []domain.DeliveryRequest {
	out := items[:0]
	for _, d := range items {
		if d.Status.IsActive() {
			out = append(out, d)
		}
	}
	return out
}
