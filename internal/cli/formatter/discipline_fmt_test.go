package formatter

import (
	"testing"

	"github.com/alexanderramin/fluxo/internal/app"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDisciplineDetails(t *testing.T) {
	d := &app.DisciplineDetails{
		Discipline: domain.Discipline{
			Code:          "MAT0102",
			Name:          "Cálculo Diferencial e Integral II",
			Credits:       4,
			Prerequisites: []string{"MAT0101", "MAT0103"},
			Category:      domain.CategoryOtherDepartment,
			Position:      &domain.GridPosition{Row: 0, Semester: 1},
		},
		Status:  domain.StatusInProgress,
		Planned: true,
		Prerequisites: []app.RelatedDiscipline{
			{Code: "MAT0101", Name: "Cálculo Diferencial e Integral I", Status: domain.StatusCompleted, Resolved: true},
			{Code: "MAT0103", Name: "Cálculo Vetorial e Geometria Analítica", Resolved: true},
		},
		Successors: []app.RelatedDiscipline{{Code: "MAT0104", Name: "Cálculo Diferencial e Integral III", Resolved: true}},
		PortalURL:  app.PortalURL,
	}

	out := stripANSI(FormatDisciplineDetails(d))
	assert.Contains(t, out, "DETALHES DA DISCIPLINA")
	assert.Contains(t, out, "MAT0102 • 4 Créditos")
	assert.Contains(t, out, "A2 (2º período)")
	assert.Contains(t, out, "Outros Deptos.")
	assert.Contains(t, out, "▶ Cursando")
	assert.Contains(t, out, "★ Planejada")
	assert.Contains(t, out, "✔ Cálculo Diferencial e Integral I")
	assert.Contains(t, out, "Cálculo Diferencial e Integral III")
	assert.Contains(t, out, "sigaa.ufpb.br")
}

func TestFormatDisciplineDetails_NoPrerequisites(t *testing.T) {
	d := &app.DisciplineDetails{
		Discipline: domain.Discipline{Code: "DEMAT0201", Name: "Optativa", Credits: 4, Category: domain.CategoryCoreDepartment},
	}

	out := stripANSI(FormatDisciplineDetails(d))
	assert.Contains(t, out, "Nenhum pré-requisito.")
	assert.Contains(t, out, "Optativa")
	assert.Contains(t, out, "Nenhuma disciplina depende desta.")
	assert.NotContains(t, out, "Correquisitos")
}
