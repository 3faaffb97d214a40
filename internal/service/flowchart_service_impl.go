package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/fluxo/internal/app"
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/planner"
	"github.com/alexanderramin/fluxo/internal/progress"
	"go.uber.org/zap"
)

// ErrUnknownDiscipline is returned for codes absent from the curriculum.
var ErrUnknownDiscipline = errors.New("unknown discipline")

type flowchartService struct {
	mu       sync.Mutex
	graph    *curriculum.Graph
	progress *progress.Store
	planned  *planner.PlannedSet
	hovered  string
	logger   *zap.Logger
	observer UseCaseObserver
}

// NewFlowchartService wires a session over graph and a loaded store. The
// planned set and hover state start empty.
func NewFlowchartService(
	graph *curriculum.Graph,
	store *progress.Store,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) FlowchartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &flowchartService{
		graph:    graph,
		progress: store,
		planned:  planner.NewPlannedSet(),
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *flowchartService) Graph() *curriculum.Graph { return s.graph }

func (s *flowchartService) SetStatus(ctx context.Context, code string, status domain.ProgressStatus) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "set-status", startedAt, err, map[string]any{"code": code, "status": status.String()})
	}()

	if !s.graph.Has(code) {
		return fmt.Errorf("%w: %s", ErrUnknownDiscipline, code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.progress.SetStatus(ctx, code, status); err != nil {
		s.logger.Error("persisting progress failed", zap.String("code", code), zap.Error(err))
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (s *flowchartService) ResetAll(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "reset-progress", startedAt, err, nil)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.progress.ResetAll(ctx); err != nil {
		s.logger.Error("persisting progress reset failed", zap.Error(err))
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (s *flowchartService) TogglePlanned(code string) (bool, error) {
	if !s.graph.Has(code) {
		return false, fmt.Errorf("%w: %s", ErrUnknownDiscipline, code)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planned.Toggle(code), nil
}

func (s *flowchartService) ClearPlanned() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planned.Clear()
}

func (s *flowchartService) SetHovered(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hovered = code
}

func (s *flowchartService) Progress() progress.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.Snapshot()
}

func (s *flowchartService) Planned() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planned.Codes()
}

func (s *flowchartService) Hovered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered
}

func (s *flowchartService) Overview() app.Overview {
	snap := s.Progress()
	return app.Overview{
		TotalCredits:     s.graph.TotalMandatoryCredits(),
		CompletedCredits: s.graph.CompletedCredits(snap),
		Percentage:       s.graph.CompletionPercentage(snap),
		Semesters:        s.graph.SemesterBreakdown(snap),
		CompletedCount:   countMandatory(s.graph, snap, domain.StatusCompleted),
		InProgressCount:  countMandatory(s.graph, snap, domain.StatusInProgress),
		MandatoryCount:   len(s.graph.Mandatory()),
	}
}

func (s *flowchartService) Plan() planner.Result {
	return planner.Validate(s.Planned(), s.graph, s.Progress())
}

func (s *flowchartService) Highlight() curriculum.Highlight {
	return s.graph.Highlight(s.Hovered())
}

func (s *flowchartService) Details(code string) (*app.DisciplineDetails, error) {
	d, ok := s.graph.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiscipline, code)
	}
	snap := s.Progress()

	s.mu.Lock()
	planned := s.planned.Contains(code)
	s.mu.Unlock()

	return &app.DisciplineDetails{
		Discipline:    d,
		Status:        snap.StatusOf(code),
		Planned:       planned,
		Prerequisites: s.related(d.Prerequisites, snap),
		Successors:    s.related(s.graph.SuccessorsOf(code), snap),
		Corequisites:  s.related(d.Corequisites, snap),
		PortalURL:     app.PortalURL,
	}, nil
}

func (s *flowchartService) related(codes []string, snap progress.Snapshot) []app.RelatedDiscipline {
	out := make([]app.RelatedDiscipline, 0, len(codes))
	for _, c := range codes {
		out = append(out, app.RelatedDiscipline{
			Code:     c,
			Name:     s.graph.DisplayName(c),
			Status:   snap.StatusOf(c),
			Resolved: s.graph.Has(c),
		})
	}
	return out
}

func (s *flowchartService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func countMandatory(g *curriculum.Graph, snap progress.Snapshot, status domain.ProgressStatus) int {
	n := 0
	for _, d := range g.Mandatory() {
		if snap.StatusOf(d.Code) == status {
			n++
		}
	}
	return n
}
