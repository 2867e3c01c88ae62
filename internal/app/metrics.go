package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"artmarket-partner-console/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	FeedFallbacksTotal     prometheus.Counter `name:"feed_fallbacks_total"`
	HistoryRecordedTotal   prometheus.Counter `name:"history_recorded_total"`
	StatusTransitionsTotal *prometheus.CounterVec
}

func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = metrics.Reuse(reg, metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	if out.GatewayRetriesTotal, err = metrics.Reuse(reg, metrics.NewGatewayRetriesTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register partner_gateway_retries_total: %w", err)
	}
	if out.FeedFallbacksTotal, err = metrics.Reuse(reg, metrics.NewFeedFallbacksTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register active_feed_fallbacks_total: %w", err)
	}
	if out.HistoryRecordedTotal, err = metrics.Reuse(reg, metrics.NewHistoryRecordedTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register delivery_history_recorded_total: %w", err)
	}
	if out.StatusTransitionsTotal, err = metrics.Reuse(reg, metrics.NewStatusTransitionsTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register delivery_status_transitions_total: %w", err)
	}
	return out, nil
}
