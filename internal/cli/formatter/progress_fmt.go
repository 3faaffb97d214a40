package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/app"
)

const semesterBarWidth = 12

// FormatOverview renders completion totals and the per-semester breakdown.
func FormatOverview(ov app.Overview) string {
	var b strings.Builder

	b.WriteString(Header("Progresso no Curso"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		RenderProgress(ov.Percentage/100, 30),
		Bold(fmt.Sprintf("%d / %d créditos obrigatórios", ov.CompletedCredits, ov.TotalCredits)),
	))
	b.WriteString(Dim(fmt.Sprintf("%d concluídas · %d cursando · %d obrigatórias",
		ov.CompletedCount, ov.InProgressCount, ov.MandatoryCount)))
	b.WriteString("\n\n")

	headers := []string{"PERÍODO", "CONCLUÍDOS", "CURSANDO", "TOTAL", ""}
	rows := make([][]string, 0, len(ov.Semesters))
	for i, s := range ov.Semesters {
		frac := 0.0
		if s.Total > 0 {
			frac = float64(s.Completed) / float64(s.Total)
		}
		rows = append(rows, []string{
			SemesterLabel(i),
			fmt.Sprint(s.Completed),
			fmt.Sprint(s.InProgress),
			fmt.Sprint(s.Total),
			RenderCompactBar(frac, semesterBarWidth, s.Completed == 0),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []Align{AlignRight, AlignRight, AlignRight, AlignRight}))
	return b.String()
}
