package partner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Gateway is the backend surface the delivery views depend on.
type Gateway interface {
	GetActiveDeliveries(ctx context.Context) (*ActiveResponse, error)
	GetPendingDeliveries(ctx context.Context) (*PendingResponse, error)
	UpdateDeliveryStatus(ctx context.Context, d domain.DeliveryRequest, status domain.DeliveryStatus) (*StatusUpdateResponse, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes how RetryingGateway retries reads.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries the idempotent reads of next.
// Status updates pass through untouched: a PUT is never replayed.
type RetryingGateway struct {
	next    Gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next; it returns nil when next is nil.
func NewRetryingGateway(next Gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// GetActiveDeliveries retries the active list on transient failures.
func (g *RetryingGateway) GetActiveDeliveries(ctx context.Context) (*ActiveResponse, error) {
	return retry(ctx, g, "GetActiveDeliveries", g.next.GetActiveDeliveries)
}

// GetPendingDeliveries retries the legacy list on transient failures.
func (g *RetryingGateway) GetPendingDeliveries(ctx context.Context) (*PendingResponse, error) {
	return retry(ctx, g, "GetPendingDeliveries", g.next.GetPendingDeliveries)
}

// UpdateDeliveryStatus delegates without retrying.
func (g *RetryingGateway) UpdateDeliveryStatus(ctx context.Context, d domain.DeliveryRequest, status domain.DeliveryStatus) (*StatusUpdateResponse, error) {
	return g.next.UpdateDeliveryStatus(ctx, d, status)
}

func retry[T any](ctx context.Context, g *RetryingGateway, method string, call func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		res, err := call(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("partner gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return zero, lastErr
}

// isRetryable reports whether err is a transport failure or a transient gateway status.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *apperr.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case 0,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

var (
	_ Gateway = (*Client)(nil)
	_ Gateway = (*RetryingGateway)(nil)
)
