package history

import (
	"context"
	"fmt"
	"sync"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Source returns the complete delivery history.
type Source interface {
	List(ctx context.Context) ([]domain.DeliveryRequest, error)
}

// Service is the read-only delivery history view.
type Service struct {
	source Source
	logger logx.Logger

	mu   sync.Mutex
	sort SortState
}

// NewService creates the view sorted by date, newest first.
func NewService(source Source, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		source: source,
		logger: logger,
		sort:   SortState{Field: SortByDate, Desc: true},
	}
}

// SortState returns the current sort of the view.
func (s *Service) SortState() SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// Toggle applies a column click to the view's sort.
func (s *Service) Toggle(field SortField) SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = s.sort.Toggle(field)
	return s.sort
}

// List loads the whole history, then filters and sorts it.
// A query without a sort field uses the view's current sort.
func (s *Service) List(ctx context.Context, q Query) ([]domain.DeliveryRequest, error) {
	items, err := s.source.List(ctx)
	if err != nil {
		s.logger.Error("load delivery history failed", logx.Err(err))
		return nil, fmt.Errorf("delivery history: %w", err)
	}

	if q.Sort.Field == "" {
		q.Sort = s.SortState()
	}
	out := Filter(items, q)
	Sort(out, q.Sort)
	return out, nil
}
