package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/planner"
)

// FormatPlan renders the planning report: disciplines, credit total and
// prerequisite warnings.
func FormatPlan(res planner.Result) string {
	var b strings.Builder

	b.WriteString(Header("Planejamento"))
	b.WriteString("\n")
	if len(res.Disciplines) == 0 {
		b.WriteString(Dim("Nenhuma disciplina planejada."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(res.Disciplines))
	for _, d := range res.Disciplines {
		rows = append(rows, []string{d.Code, Truncate(d.Name, 48), fmt.Sprint(d.Credits), d.Label()})
	}
	b.WriteString(RenderTableAligned([]string{"CÓDIGO", "DISCIPLINA", "CR", "POSIÇÃO"}, rows, []Align{AlignLeft, AlignLeft, AlignRight}))
	b.WriteString("\n")
	b.WriteString(Bold(fmt.Sprintf("Total: %s", Credits(res.TotalCredits))))
	b.WriteString("\n")

	if !res.HasWarnings() {
		b.WriteString(StyleGreen.Render(MarkCompleted + " Todos os pré-requisitos foram cumpridos."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(StyleYellowBold.Render(fmt.Sprintf("Avisos (%d)", len(res.Warnings))))
	b.WriteString("\n")
	for _, w := range res.Warnings {
		b.WriteString(StyleYellow.Render("⚠ " + w))
		b.WriteString("\n")
	}
	return b.String()
}
