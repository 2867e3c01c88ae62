//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

package handlers

import (
	"context"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/service/deliveries"
	"artmarket-partner-console/internal/service/history"
)

type activeBoard interface {
	Load(ctx context.Context) error
	Loaded() bool
	Items() []domain.DeliveryRequest
	LastError() error
	Advance(ctx context.Context, id string, status domain.DeliveryStatus) (deliveries.AdvanceResult, error)
	AdvanceNext(ctx context.Context, id string) (deliveries.AdvanceResult, error)
}

type requestsBoard interface {
	Load(ctx context.Context) error
	Loaded() bool
	Items() []domain.DeliveryRequest
	LastError() error
	Accept(ctx context.Context, id, feeInput string) (domain.DeliveryRequest, error)
}

type historyView interface {
	List(ctx context.Context, q history.Query) ([]domain.DeliveryRequest, error)
	Toggle(field history.SortField) history.SortState
	SortState() history.SortState
}

type sessionManager interface {
	Current() domain.Session
	Login(ctx context.Context, s domain.Session) error
	Logout(ctx context.Context) error
}
