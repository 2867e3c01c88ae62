package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewGatewayRetriesTotal returns a counter of retry attempts performed by the partner gateway.
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "partner_gateway_retries_total",
		Help: "Total number of retry attempts performed by the partner gateway",
	})
}

// NewFeedFallbacksTotal returns a counter of active-list fetches served by the legacy endpoint.
func NewFeedFallbacksTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "active_feed_fallbacks_total",
		Help: "Total number of active delivery fetches that fell back to the legacy endpoint",
	})
}

// NewStatusTransitionsTotal returns a counter of applied delivery status transitions by status.
func NewStatusTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_status_transitions_total",
		Help: "Total number of delivery status transitions accepted by the backend",
	}, []string{"status"})
}

// NewHistoryRecordedTotal returns a counter of deliveries written to history by the worker.
func NewHistoryRecordedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_history_recorded_total",
		Help: "Total number of delivered events recorded into history",
	})
}

// NewRateLimitExceededTotal returns a counter of partner actions rejected by the throttle.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of partner actions rejected by the action throttle",
	})
}

// Reuse registers c, or returns the collector already registered under the
// same descriptor.
func Reuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, err
}

// Register registers collectors, skipping ones already registered.
func Register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
