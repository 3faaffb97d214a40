package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/fluxo/internal/craa"
)

type craaService struct {
	mu       sync.Mutex
	store    *craa.Store
	ws       craa.Worksheet
	observer UseCaseObserver
}

// NewCRAAService loads the stored worksheet and serves edits on it.
func NewCRAAService(ctx context.Context, store *craa.Store, observers ...UseCaseObserver) CRAAService {
	return &craaService{
		store:    store,
		ws:       store.Load(ctx),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *craaService) Worksheet() craa.Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Clone()
}

func (s *craaService) Projection() craa.Projection {
	return craa.Project(s.Worksheet())
}

// Update applies fn to a copy of the worksheet and persists the result. The
// in-memory worksheet changes only when both succeed.
func (s *craaService) Update(ctx context.Context, fn func(ws *craa.Worksheet) error) (ws craa.Worksheet, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "craa-update",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"rows": len(ws.Rows)},
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.ws.Clone()
	if err = fn(&next); err != nil {
		return s.ws.Clone(), err
	}
	if err = s.store.Save(ctx, next); err != nil {
		return s.ws.Clone(), err
	}
	s.ws = next
	return next.Clone(), nil
}

func (s *craaService) Reset(ctx context.Context) (craa.Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := s.store.Reset(ctx)
	if err != nil {
		return s.ws.Clone(), err
	}
	s.ws = fresh
	return fresh.Clone(), nil
}
