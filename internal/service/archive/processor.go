package archive

import (
	"context"
	"fmt"
	"strings"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Processor turns status change events into delivery history.
type Processor struct {
	store    Store
	logger   logx.Logger
	recorded counter
	factory  *actionFactory
}

// NewProcessor creates a Processor; recorded may be nil.
func NewProcessor(store Store, logger logx.Logger, recorded counter) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{store: store, logger: logger, recorded: recorded}
	p.factory = newActionFactory(p.onDelivered)
	return p
}

// Handle processes a single transition. Events that can never be processed
// (no delivery id, unknown status) are reported as apperr.ErrInvalid.
func (p *Processor) Handle(ctx context.Context, t domain.Transition) error {
	if strings.TrimSpace(t.Delivery.ID) == "" {
		return apperr.Validation("transition without delivery id")
	}
	fn, ok := p.factory.get(t.Status)
	if !ok {
		return apperr.Validation(fmt.Sprintf("unknown delivery status %q", t.Status))
	}
	return fn(ctx, t)
}

func (p *Processor) onDelivered(ctx context.Context, t domain.Transition) error {
	if err := p.store.Record(ctx, t); err != nil {
		return fmt.Errorf("archive delivery %s: %w", t.Delivery.ID, err)
	}
	if p.recorded != nil {
		p.recorded.Inc()
	}
	p.logger.Info("delivery archived",
		logx.String("delivery_id", t.Delivery.ID),
		logx.String("request_type", string(t.Delivery.RequestType)),
		logx.Time("occurred_at", t.OccurredAt),
	)
	return nil
}
