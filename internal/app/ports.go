package app

import (
	"context"

	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/planner"
)

type ProgressUseCase interface {
	SetStatus(ctx context.Context, code string, status domain.ProgressStatus) error
	ResetAll(ctx context.Context) error
	Overview() Overview
}

type PlanUseCase interface {
	TogglePlanned(code string) (bool, error)
	Plan() planner.Result
}

type CRAAUseCase interface {
	Worksheet() craa.Worksheet
	Update(ctx context.Context, fn func(ws *craa.Worksheet) error) (craa.Worksheet, error)
	Reset(ctx context.Context) (craa.Worksheet, error)
}
