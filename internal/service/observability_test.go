package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/progress"
	"github.com/alexanderramin/fluxo/internal/repository"
	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestFlowchartService_EmitsUseCaseEvents(t *testing.T) {
	repo := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	rec := &recordingObserver{}
	svc := NewFlowchartService(testutil.NewPrereqChainGraph(t), progress.NewStore(repo, nil), nil, rec)
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "Y", domain.StatusCompleted))
	require.Error(t, svc.SetStatus(ctx, "NOPE", domain.StatusCompleted))
	require.NoError(t, svc.ResetAll(ctx))

	require.Len(t, rec.events, 3)
	assert.Equal(t, "set-status", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "completed", rec.events[0].Fields["status"])
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, ErrUnknownDiscipline)
	assert.Equal(t, "reset-progress", rec.events[2].Name)
}

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "set-status", Success: true, Fields: map[string]any{"code": "X"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset-progress", Err: errors.New("boom")})

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, zapcore.DebugLevel, all[0].Level)
	assert.Equal(t, "X", all[0].ContextMap()["code"])
	assert.Equal(t, zapcore.InfoLevel, all[1].Level)
	assert.Equal(t, "boom", all[1].ContextMap()["error"])
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
