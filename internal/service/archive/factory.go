package archive

import (
	"context"

	"artmarket-partner-console/internal/domain"
)

type actionFunc func(context.Context, domain.Transition) error

type actionFactory struct {
	byStatus map[domain.DeliveryStatus]actionFunc
}

func skip(context.Context, domain.Transition) error { return nil }

// newActionFactory maps every known status to an action; only delivered
// deliveries reach history.
func newActionFactory(onDelivered actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.DeliveryStatus]actionFunc{
			domain.StatusPendingAssignment: skip,
			domain.StatusAccepted:          skip,
			domain.StatusPickedUp:          skip,
			domain.StatusOutForDelivery:    skip,
			domain.StatusInTransit:         skip,
			domain.StatusDelivered:         onDelivered,
		},
	}
}

func (f *actionFactory) get(status domain.DeliveryStatus) (actionFunc, bool) {
	fn, ok := f.byStatus[status]
	return fn, ok
}
