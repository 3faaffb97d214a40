package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/fluxo/internal/config"
	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/progress"
	"github.com/alexanderramin/fluxo/internal/repository"
	"github.com/alexanderramin/fluxo/internal/service"
	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T, g *curriculum.Graph) *App {
	t.Helper()
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)

	store := progress.NewStore(kv, zap.NewNop())
	store.Load(ctx)
	craaStore := craa.NewStore(kv, testutil.NewTestUoW(database), zap.NewNop())

	return &App{
		Flowchart: service.NewFlowchartService(g, store, zap.NewNop()),
		CRAA:      service.NewCRAAService(ctx, craaStore),
	}
}

// executeCmd runs a CLI command against the given App and returns its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "browse")
	assert.Contains(t, out, "craa")
}

func TestRootCmd_BootstrapReceivesFlags(t *testing.T) {
	wired := testApp(t, testutil.NewPrereqChainGraph(t))

	var got config.Config
	calls := 0
	app := &App{Config: config.Config{DBPath: "default.db"}}
	app.Bootstrap = func(cfg config.Config) error {
		got = cfg
		calls++
		app.Flowchart, app.CRAA = wired.Flowchart, wired.CRAA
		return nil
	}

	_, err := executeCmd(t, app, "--db", "/tmp/other.db", "--dataset", "mine.yaml", "check")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", got.DBPath)
	assert.Equal(t, "mine.yaml", got.DatasetPath)

	_, err = executeCmd(t, app, "check")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "services are wired once")
}

// --- grid / show / check ---

func TestGridCmd_DefaultCurriculum(t *testing.T) {
	app := testApp(t, curriculum.MustDefault())

	out, err := executeCmd(t, app, "grid")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "1º")
	assert.Contains(t, out, "10º")
	assert.Contains(t, out, "MAT0101")
	assert.Contains(t, out, "Legenda")
	assert.NotContains(t, out, "DEMAT0201")

	out, err = executeCmd(t, app, "grid", "--optional")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "DEMAT0201")
}

func TestGridCmd_ShowsStatusAndPlan(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))
	require.NoError(t, app.Flowchart.SetStatus(context.Background(), "Y", domain.StatusCompleted))
	_, err := app.Flowchart.TogglePlanned("X")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "grid")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "✔ Y")
	assert.Contains(t, out, "· X★")
}

func TestShowCmd_Details(t *testing.T) {
	app := testApp(t, curriculum.MustDefault())

	out, err := executeCmd(t, app, "show", "mat0102")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "DETALHES DA DISCIPLINA")
	assert.Contains(t, out, "MAT0102 • 4 Créditos")
	assert.Contains(t, out, "Cálculo Vetorial e Geometria Analítica")
	assert.Contains(t, out, "sigaa.ufpb.br")
}

func TestShowCmd_UnknownCode(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "show", "NOPE")
	assert.ErrorIs(t, err, service.ErrUnknownDiscipline)
}

func TestCheckCmd(t *testing.T) {
	app := testApp(t, curriculum.MustDefault())
	out, err := executeCmd(t, app, "check")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "83 disciplinas (67 obrigatórias, 16 optativas), 0 referências não resolvidas")

	g := testutil.NewTestGraph(t, testutil.NewTestDataset(1,
		[][]*curriculum.DisciplineConfig{{testutil.NewTestDiscipline("A", testutil.WithPrerequisites("GHOST"))}},
	))
	out, err = executeCmd(t, testApp(t, g), "check")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "GHOST")
	assert.Contains(t, out, "pré-requisito")
}

// --- set / progress / reset ---

func TestSetCmd(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	out, err := executeCmd(t, app, "set", "y", "completed")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Concluída")
	assert.Equal(t, domain.StatusCompleted, app.Flowchart.Progress().StatusOf("Y"))

	_, err = executeCmd(t, app, "set", "Y", "in-progress")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, app.Flowchart.Progress().StatusOf("Y"))

	_, err = executeCmd(t, app, "set", "Y", "pending")
	require.NoError(t, err)
	assert.Empty(t, app.Flowchart.Progress())
}

func TestSetCmd_Errors(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "set", "Y", "done")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = executeCmd(t, app, "set", "NOPE", "completed")
	assert.ErrorIs(t, err, service.ErrUnknownDiscipline)

	_, err = executeCmd(t, app, "set", "Y")
	assert.Error(t, err)
}

func TestProgressCmd(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))
	_, err := executeCmd(t, app, "set", "Y", "completed")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "4 / 8 créditos obrigatórios")
}

func TestResetCmd(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))
	require.NoError(t, app.Flowchart.SetStatus(context.Background(), "Y", domain.StatusCompleted))

	_, err := executeCmd(t, app, "reset")
	assert.ErrorIs(t, err, errConfirmRequired)
	assert.Len(t, app.Flowchart.Progress(), 1)

	out, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Progresso limpo.")
	assert.Empty(t, app.Flowchart.Progress())
}

// --- plan ---

func TestPlanCmd_Warnings(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	out, err := executeCmd(t, app, "plan", "X", "Z")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "Total: 6 CR")
	assert.Contains(t, out, "Avisos (2)")
	assert.Contains(t, out, "⚠ 'X' requer 'Y', que não está marcada como concluída.")
	assert.Contains(t, out, "⚠ 'Z' requer 'Y', que não está marcada como concluída.")

	_, err = executeCmd(t, app, "set", "Y", "completed")
	require.NoError(t, err)
	out, err = executeCmd(t, app, "plan", "X")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "Total: 4 CR")
	assert.Contains(t, out, "Todos os pré-requisitos foram cumpridos.")
}

func TestPlanCmd_StartsFresh(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "plan", "X")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "plan", "Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, app.Flowchart.Planned())
	assert.Contains(t, stripANSI(out), "Total: 4 CR")

	out, err = executeCmd(t, app, "plan", "Y", "Y")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Nenhuma disciplina planejada.")

	_, err = executeCmd(t, app, "plan", "NOPE")
	assert.ErrorIs(t, err, service.ErrUnknownDiscipline)
}

// --- craa ---

func TestCRAACmd_Workflow(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	out, err := executeCmd(t, app, "craa")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "---")

	_, err = executeCmd(t, app, "craa", "set", "8", "100")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "craa", "add", "Cálculo I", "10", "10")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "8.1818")
	assert.Len(t, app.CRAA.Worksheet().Rows, 1, "the blank starting row is filled in")

	out, err = executeCmd(t, app, "craa", "update", "1", "grade", "5")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "7.7273")

	_, err = executeCmd(t, app, "craa", "remove", "1")
	assert.ErrorIs(t, err, craa.ErrLastRow)

	_, err = executeCmd(t, app, "craa", "add", "Física I", "4", "9,5")
	require.NoError(t, err)
	require.Len(t, app.CRAA.Worksheet().Rows, 2)

	_, err = executeCmd(t, app, "craa", "rm", "1")
	require.NoError(t, err)
	ws := app.CRAA.Worksheet()
	require.Len(t, ws.Rows, 1)
	assert.Equal(t, "Física I", ws.Rows[0].Name)

	out, err = executeCmd(t, app, "craa", "clear")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "---")
	assert.Empty(t, app.CRAA.Worksheet().CurrentCRAA)
}

func TestCRAACmd_ArgumentErrors(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "craa", "set", "8")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "craa", "set")
	assert.Error(t, err, "non-interactive set needs both values")

	_, err = executeCmd(t, app, "craa", "add", "only-name")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "craa", "update", "9", "grade", "5")
	assert.ErrorIs(t, err, craa.ErrRowNotFound)
}

func TestCRAACmd_AddBlankRowNonInteractive(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "craa", "add", "A", "4", "8")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "craa", "add")
	require.NoError(t, err)
	rows := app.CRAA.Worksheet().Rows
	require.Len(t, rows, 2)
	assert.True(t, rows[1].Blank())
}

// --- browse ---

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t, testutil.NewPrereqChainGraph(t))

	_, err := executeCmd(t, app, "browse")
	assert.ErrorIs(t, err, errNotInteractive)
}
