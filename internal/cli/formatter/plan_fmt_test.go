package formatter

import (
	"testing"

	"github.com/alexanderramin/fluxo/internal/planner"
	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan_WithWarnings(t *testing.T) {
	res := planner.Validate([]string{"X", "Z"}, testutil.NewPrereqChainGraph(t), statusMap{})
	out := stripANSI(FormatPlan(res))

	assert.Contains(t, out, "PLANEJAMENTO")
	assert.Contains(t, out, "Total: 6 CR")
	assert.Contains(t, out, "Avisos (2)")
	assert.Contains(t, out, "⚠ 'X' requer 'Y', que não está marcada como concluída.")
	assert.Contains(t, out, "OPT")
}

func TestFormatPlan_AllSatisfied(t *testing.T) {
	res := planner.Validate([]string{"Y"}, testutil.NewPrereqChainGraph(t), statusMap{})
	out := stripANSI(FormatPlan(res))

	assert.Contains(t, out, "Todos os pré-requisitos foram cumpridos.")
	assert.NotContains(t, out, "Avisos")
}

func TestFormatPlan_Empty(t *testing.T) {
	out := stripANSI(FormatPlan(planner.Result{}))
	assert.Contains(t, out, "Nenhuma disciplina planejada.")
}
