package service

import (
	"github.com/alexanderramin/fluxo/internal/app"
	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/progress"
)

// FlowchartService is one user session over the curriculum: durable
// progress plus the session-local planned set and hover state.
type FlowchartService interface {
	app.ProgressUseCase
	app.PlanUseCase

	Graph() *curriculum.Graph
	ClearPlanned()
	SetHovered(code string)

	Progress() progress.Snapshot
	Planned() []string
	Hovered() string

	Highlight() curriculum.Highlight
	Details(code string) (*app.DisciplineDetails, error)
}

type CRAAService interface {
	app.CRAAUseCase

	Projection() craa.Projection
}
