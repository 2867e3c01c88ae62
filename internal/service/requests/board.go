package requests

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
	"artmarket-partner-console/internal/service/deliveries"
)

// InvalidFeeMessage is shown for a fee that is not a positive number.
const InvalidFeeMessage = "please enter a valid delivery fee"

// Board is the delivery requests view: unassigned requests a partner may accept.
type Board struct {
	gw      pendingGateway
	session SessionProvider
	logger  logx.Logger
	now     func() time.Time

	mu      sync.Mutex
	items   []domain.DeliveryRequest
	lastErr error
	loaded  bool
}

// NewBoard creates an empty board. session may be nil.
func NewBoard(gw pendingGateway, session SessionProvider, logger logx.Logger) *Board {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Board{
		gw:      gw,
		session: session,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Load replaces the list with the requests still awaiting a partner.
// On failure the previous list is kept.
func (b *Board) Load(ctx context.Context) error {
	resp, err := b.gw.GetPendingDeliveries(ctx)
	if err != nil {
		b.logger.Error("load delivery requests failed", logx.Err(err))
		err = fmt.Errorf("delivery requests: %w", err)
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		return err
	}

	all := deliveries.FromPending(resp.Data)
	items := make([]domain.DeliveryRequest, 0, len(all))
	for _, d := range all {
		if d.Status != "" && d.Status != domain.StatusPendingAssignment {
			continue
		}
		d.Status = domain.StatusPendingAssignment
		d.Progress = domain.ProgressFor(d.Status)
		items = append(items, d)
	}

	b.mu.Lock()
	b.items = items
	b.lastErr = nil
	b.loaded = true
	b.mu.Unlock()
	return nil
}

// Items returns a snapshot of the list.
func (b *Board) Items() []domain.DeliveryRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.DeliveryRequest, len(b.items))
	for i, d := range b.items {
		out[i] = d.Clone()
	}
	return out
}

// Loaded reports whether a Load has succeeded.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// LastError returns the error of the last failed Load.
func (b *Board) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Accept marks request id as accepted with the given delivery fee.
// The change is local to this board; the backend is not notified.
func (b *Board) Accept(ctx context.Context, id, feeInput string) (domain.DeliveryRequest, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryRequest{}, err
	}
	fee, err := ParseFee(feeInput)
	if err != nil {
		return domain.DeliveryRequest{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i, d := range b.items {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.DeliveryRequest{}, fmt.Errorf("delivery request %s: %w", id, apperr.ErrNotFound)
	}
	if b.items[idx].Status == domain.StatusAccepted {
		return domain.DeliveryRequest{}, fmt.Errorf("delivery request %s already accepted: %w", id, apperr.ErrConflict)
	}

	d := b.items[idx].Clone()
	d.Status = domain.StatusAccepted
	d.Progress = domain.ProgressFor(d.Status)
	d.ShippingFee = fee
	d.AcceptedDate = b.now()
	if b.session != nil {
		d.PartnerID = b.session.Current().UserID
	}
	b.items[idx] = d

	b.logger.Info("delivery request accepted",
		logx.String("event", "delivery_request_accepted"),
		logx.String("delivery_id", id),
		logx.Float64("shipping_fee", fee),
	)
	return d.Clone(), nil
}

// ParseFee parses a delivery fee entered by the partner. Only finite positive
// numbers are accepted.
func ParseFee(input string) (float64, error) {
	fee, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(fee) || math.IsInf(fee, 0) || fee <= 0 {
		return 0, apperr.Validation(InvalidFeeMessage)
	}
	return fee, nil
}
