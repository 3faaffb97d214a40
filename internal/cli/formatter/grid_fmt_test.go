package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusMap map[string]domain.ProgressStatus

func (m statusMap) StatusOf(code string) domain.ProgressStatus { return m[code] }

func TestFormatGrid_PrereqChain(t *testing.T) {
	g := testutil.NewPrereqChainGraph(t)
	out := stripANSI(FormatGrid(GridData{
		Graph:    g,
		Progress: statusMap{"Y": domain.StatusCompleted},
		Planned:  []string{"X"},
	}))

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "1º")
	assert.Contains(t, lines[0], "2º")
	assert.Contains(t, lines[2], "A")
	assert.Contains(t, lines[2], "✔ Y")
	assert.Contains(t, lines[2], "· X★")
	assert.Contains(t, lines[4], "CR")
	assert.Contains(t, out, "Legenda:")
}

func TestFormatGrid_EmptyCellsAndFooter(t *testing.T) {
	ds := testutil.NewTestDataset(2, [][]*curriculum.DisciplineConfig{
		{testutil.NewTestDiscipline("A", testutil.WithCredits(4)), nil},
		{testutil.NewTestDiscipline("B", testutil.WithCredits(3)), testutil.NewTestDiscipline("C", testutil.WithCredits(5))},
	})
	out := stripANSI(FormatGrid(GridData{Graph: testutil.NewTestGraph(t, ds), Progress: statusMap{}}))

	assert.Contains(t, out, "—")
	var footer string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "CR") && !strings.Contains(l, "Legenda") {
			footer = l
		}
	}
	assert.Equal(t, []string{"CR", "7", "5"}, strings.Fields(footer))
}

func TestFormatGrid_DefaultCurriculum(t *testing.T) {
	out := stripANSI(FormatGrid(GridData{Graph: curriculum.MustDefault(), Progress: statusMap{}}))

	assert.Contains(t, out, "10º")
	assert.Contains(t, out, "· MAT0101")
	assert.Contains(t, out, "H")
}

func TestFormatOptional(t *testing.T) {
	g := testutil.NewPrereqChainGraph(t)
	out := stripANSI(FormatOptional(GridData{Graph: g, Progress: statusMap{"Z": domain.StatusInProgress}, Planned: []string{"Z"}}))

	assert.Contains(t, out, "CONTEÚDOS COMPLEMENTARES OPTATIVOS")
	assert.Contains(t, out, "Z★")
	assert.Contains(t, out, "▶ Cursando")
}
