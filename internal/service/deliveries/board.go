package deliveries

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

const (
	// DefaultRemovalDelay is how long a delivered item stays on the board.
	DefaultRemovalDelay = 2 * time.Second
	// DefaultRecordTimeout bounds how long a status update waits for its recorder.
	DefaultRecordTimeout = 2 * time.Second
)

// BoardConfig configures a Board.
type BoardConfig struct {
	RemovalDelay  time.Duration
	RecordTimeout time.Duration
}

// AdvanceResult is what the backend reported for an accepted transition.
type AdvanceResult struct {
	Delivery      domain.DeliveryRequest
	Message       string
	PlatformFee   float64
	PaymentAmount float64
}

// TransitionCounter counts accepted transitions by target status.
type TransitionCounter interface {
	Inc(status domain.DeliveryStatus)
}

type vecCounter struct{ vec *prometheus.CounterVec }

func (c vecCounter) Inc(status domain.DeliveryStatus) {
	c.vec.WithLabelValues(string(status)).Inc()
}

// CountTransitions adapts a Prometheus counter vector labelled by status.
func CountTransitions(vec *prometheus.CounterVec) TransitionCounter {
	if vec == nil {
		return nil
	}
	return vecCounter{vec: vec}
}

// Board is the active deliveries view: the list, its last load error and the
// delayed removal of delivered items. Safe for concurrent use.
type Board struct {
	feed        *Feed
	gw          deliveryGateway
	recorder    Recorder
	transitions TransitionCounter
	logger      logx.Logger
	delay       time.Duration
	recordWait  time.Duration
	now         func() time.Time

	mu       sync.Mutex
	items    []domain.DeliveryRequest
	lastErr  error
	loadedAt time.Time
	gen      uint64
	timers   map[string]*time.Timer
	closed   bool
}

// NewBoard creates an empty board. recorder and transitions may be nil.
func NewBoard(feed *Feed, gw deliveryGateway, recorder Recorder, transitions TransitionCounter, logger logx.Logger, cfg BoardConfig) *Board {
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.RemovalDelay <= 0 {
		cfg.RemovalDelay = DefaultRemovalDelay
	}
	if cfg.RecordTimeout <= 0 {
		cfg.RecordTimeout = DefaultRecordTimeout
	}
	return &Board{
		feed:        feed,
		gw:          gw,
		recorder:    recorder,
		transitions: transitions,
		logger:      logger,
		delay:       cfg.RemovalDelay,
		recordWait:  cfg.RecordTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		timers:      make(map[string]*time.Timer),
	}
}

// Load replaces the list with a fresh fetch. On failure the previous list is
// kept and the error becomes the board's banner. Pending removals are dropped.
func (b *Board) Load(ctx context.Context) error {
	items, err := b.feed.Active(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if err != nil {
		b.lastErr = err
		return err
	}
	b.stopTimersLocked()
	b.gen++
	b.items = items
	b.lastErr = nil
	b.loadedAt = b.now()
	return nil
}

// Items returns a snapshot of the current list.
func (b *Board) Items() []domain.DeliveryRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.DeliveryRequest, len(b.items))
	for i, d := range b.items {
		out[i] = d.Clone()
	}
	return out
}

// LastError returns the error of the last failed Load, cleared by a successful one.
func (b *Board) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Loaded reports whether a Load has succeeded.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.loadedAt.IsZero()
}

// Advance asks the backend to move delivery id to status and, on success,
// patches the local list. Only active statuses and delivered are accepted as
// targets. Delivered items leave the list after the removal delay.
func (b *Board) Advance(ctx context.Context, id string, status domain.DeliveryStatus) (AdvanceResult, error) {
	if !status.Valid() {
		return AdvanceResult{}, apperr.Validation(fmt.Sprintf("unknown delivery status %q", status))
	}
	if !status.IsActive() && status != domain.StatusDelivered {
		return AdvanceResult{}, apperr.Validation(fmt.Sprintf("cannot move an active delivery to %q", status))
	}
	item, err := b.find(id)
	if err != nil {
		return AdvanceResult{}, err
	}
	if item.Status == domain.StatusDelivered {
		return AdvanceResult{}, fmt.Errorf("delivery %s already delivered: %w", id, apperr.ErrConflict)
	}

	resp, err := b.gw.UpdateDeliveryStatus(ctx, item, status)
	if err != nil {
		b.logger.Error("delivery status update failed",
			logx.String("delivery_id", id),
			logx.String("status", string(status)),
			logx.Err(err),
		)
		return AdvanceResult{}, err
	}

	b.mu.Lock()
	b.items = ApplyStatusTransition(b.items, id, status)
	if status == domain.StatusDelivered {
		b.scheduleRemovalLocked(id)
	}
	b.mu.Unlock()

	updated := item.Clone()
	updated.Status = status
	updated.Progress = domain.ProgressFor(status)

	if b.transitions != nil {
		b.transitions.Inc(status)
	}
	b.logger.Info("delivery status updated",
		logx.String("event", "delivery_status_updated"),
		logx.String("delivery_id", id),
		logx.String("order_type", string(item.OrderType())),
		logx.String("status", string(status)),
	)
	if b.recorder != nil {
		t := domain.Transition{Delivery: updated, Status: status, OccurredAt: b.now()}
		rctx, cancel := context.WithTimeout(ctx, b.recordWait)
		err := b.recorder.Record(rctx, t)
		cancel()
		if err != nil {
			b.logger.Warn("record transition failed",
				logx.String("delivery_id", id),
				logx.Err(err),
			)
		}
	}

	res := AdvanceResult{Delivery: updated}
	if resp != nil {
		res.Message = resp.Message
		res.PlatformFee = float64(resp.PlatformFee)
		res.PaymentAmount = float64(resp.PaymentAmount)
	}
	return res, nil
}

// AdvanceNext moves delivery id to the next step of its timeline.
func (b *Board) AdvanceNext(ctx context.Context, id string) (AdvanceResult, error) {
	item, err := b.find(id)
	if err != nil {
		return AdvanceResult{}, err
	}
	next, ok := domain.NextStatus(item.Status)
	if !ok {
		return AdvanceResult{}, fmt.Errorf("delivery %s has no next step from %q: %w", id, item.Status, apperr.ErrConflict)
	}
	return b.Advance(ctx, id, next)
}

// Close stops pending removals. Further loads and removals are ignored.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.stopTimersLocked()
}

func (b *Board) find(id string) (domain.DeliveryRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range b.items {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return domain.DeliveryRequest{}, fmt.Errorf("delivery %s: %w", id, apperr.ErrNotFound)
}

func (b *Board) scheduleRemovalLocked(id string) {
	if b.closed {
		return
	}
	if t, ok := b.timers[id]; ok {
		t.Stop()
	}
	gen := b.gen
	b.timers[id] = time.AfterFunc(b.delay, func() { b.remove(id, gen) })
}

func (b *Board) remove(id string, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.gen != gen {
		return
	}
	delete(b.timers, id)
	b.items = withoutItem(b.items, id)
	b.logger.Debug("delivered item removed from board", logx.String("delivery_id", id))
}

func (b *Board) stopTimersLocked() {
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
}
