package craa

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/fluxo/internal/repository"
	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStore_LoadDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewStore(repository.NewSQLiteKVRepo(database), testutil.NewTestUoW(database), zap.NewNop())

	ws := store.Load(context.Background())
	assert.Empty(t, ws.CurrentCRAA)
	assert.Empty(t, ws.CurrentCredits)
	assert.Len(t, ws.Rows, 1)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	store := NewStore(kv, testutil.NewTestUoW(database), zap.NewNop())
	ctx := context.Background()

	ws := NewWorksheet()
	ws.CurrentCRAA = "8.5"
	ws.CurrentCredits = "120"
	ws.Rows[0].Credits = "4"
	ws.Rows[0].Grade = "9"
	ws.AddRow()
	require.NoError(t, store.Save(ctx, ws))

	got := store.Load(ctx)
	assert.Equal(t, ws, got)

	blob, err := kv.Get(ctx, KeyCurrentCRAA)
	require.NoError(t, err)
	assert.Equal(t, `"8.5"`, blob, "scalar fields are stored as JSON strings")
}

func TestStore_SaveIsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	ctx := context.Background()

	good := NewStore(kv, testutil.NewTestUoW(database), zap.NewNop())
	before := NewWorksheet()
	before.CurrentCRAA = "7"
	before.CurrentCredits = "50"
	require.NoError(t, good.Save(ctx, before))

	injected := errors.New("disk full")
	failing := NewStore(kv, &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}, zap.NewNop())
	after := before.Clone()
	after.CurrentCRAA = "9"
	after.CurrentCredits = "60"

	err := failing.Save(ctx, after)
	require.ErrorIs(t, err, injected)

	got := good.Load(ctx)
	assert.Equal(t, "7", got.CurrentCRAA, "earlier writes must roll back")
	assert.Equal(t, "50", got.CurrentCredits)
}

func TestStore_LoadMalformedFallsBackPerField(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, KeyCurrentCRAA, `"8.1"`))
	require.NoError(t, kv.Put(ctx, KeyDisciplines, `{broken`))

	core, logs := observer.New(zapcore.WarnLevel)
	store := NewStore(kv, testutil.NewTestUoW(database), zap.New(core))
	ws := store.Load(ctx)

	assert.Equal(t, "8.1", ws.CurrentCRAA)
	assert.Len(t, ws.Rows, 1)
	entries := logs.FilterMessage("malformed craa value, using default").All()
	require.Len(t, entries, 1)
	assert.Equal(t, KeyDisciplines, entries[0].ContextMap()["key"])
}

func TestStore_Reset(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	store := NewStore(kv, testutil.NewTestUoW(database), zap.NewNop())
	ctx := context.Background()

	ws := NewWorksheet()
	ws.CurrentCRAA = "8"
	require.NoError(t, store.Save(ctx, ws))
	require.NoError(t, kv.Put(ctx, "flowchartProgress", `{}`))

	fresh, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh.Rows, 1)

	keys, err := kv.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"flowchartProgress"}, keys, "only craa keys are removed")
}

func TestStore_LoadRepairsRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	store := NewStore(kv, testutil.NewTestUoW(database), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, KeyDisciplines, `[]`))
	assert.Len(t, store.Load(ctx).Rows, 1)

	require.NoError(t, kv.Put(ctx, KeyDisciplines, `[{"name":"Cálculo I","credits":"4","grade":"7"}]`))
	ws := store.Load(ctx)
	require.Len(t, ws.Rows, 1)
	assert.NotEmpty(t, ws.Rows[0].ID)
	assert.Equal(t, "Cálculo I", ws.Rows[0].Name)
}
