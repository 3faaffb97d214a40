package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
)

// GridData is the input of the flowchart views.
type GridData struct {
	Graph    *curriculum.Graph
	Progress curriculum.StatusReader
	Planned  []string
}

func (d GridData) isPlanned(code string) bool {
	for _, p := range d.Planned {
		if p == code {
			return true
		}
	}
	return false
}

// GridCell renders one discipline as "✔ MAT0101" with a trailing ★ when
// planned.
func GridCell(d domain.Discipline, status domain.ProgressStatus, planned bool) string {
	text := StatusMark(status) + " " + d.Code
	if planned {
		text += MarkPlanned
	}
	switch status {
	case domain.StatusPending:
		return CategoryStyle(d.Category).Render(text)
	default:
		return StatusColor(status).Render(text)
	}
}

// FormatGrid renders the mandatory flowchart: one column per semester, one
// line per grid row, and a CR footer with the column credit totals.
func FormatGrid(data GridData) string {
	g := data.Graph
	headers := make([]string, 0, g.Semesters()+1)
	headers = append(headers, "")
	align := []Align{AlignCenter}
	for c := 0; c < g.Semesters(); c++ {
		headers = append(headers, SemesterLabel(c))
		align = append(align, AlignLeft)
	}

	rows := make([][]string, 0, g.Rows()+2)
	for r := 0; r < g.Rows(); r++ {
		row := []string{Bold(domain.GridPosition{Row: r}.RowLetter())}
		for c := 0; c < g.Semesters(); c++ {
			d, ok := g.Cell(r, c)
			if !ok {
				row = append(row, Dim("—"))
				continue
			}
			row = append(row, GridCell(d, data.Progress.StatusOf(d.Code), data.isPlanned(d.Code)))
		}
		rows = append(rows, row)
	}

	footer := []string{Bold("CR")}
	for _, credits := range g.CreditsPerSemester() {
		footer = append(footer, Bold(fmt.Sprint(credits)))
	}
	rows = append(rows, nil, footer)

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, align))
	b.WriteString("\n")
	b.WriteString(FormatLegend())
	return b.String()
}

// FormatOptional lists the optional disciplines.
func FormatOptional(data GridData) string {
	g := data.Graph
	headers := []string{"CÓDIGO", "DISCIPLINA", "CR", "PRÉ-REQUISITOS", "STATUS"}
	var rows [][]string
	for _, d := range g.Optional() {
		status := data.Progress.StatusOf(d.Code)
		code := d.Code
		if data.isPlanned(d.Code) {
			code += MarkPlanned
		}
		prereqs := Dim("—")
		if d.HasPrerequisites() {
			prereqs = strings.Join(d.Prerequisites, ", ")
		}
		rows = append(rows, []string{code, Truncate(d.Name, 48), fmt.Sprint(d.Credits), prereqs, StatusPill(status)})
	}

	var b strings.Builder
	b.WriteString(Header("Conteúdos Complementares Optativos"))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned(headers, rows, []Align{AlignLeft, AlignLeft, AlignRight}))
	return b.String()
}

// FormatLegend explains the markers used by the grid.
func FormatLegend() string {
	parts := []string{
		StyleGreen.Render(MarkCompleted + " " + domain.StatusCompleted.Label()),
		StyleYellow.Render(MarkInProgress + " " + domain.StatusInProgress.Label()),
		MarkPending + " " + domain.StatusPending.Label(),
		StylePurple.Render(MarkPlanned + " Planejada"),
		CategoryBadge(domain.CategoryCoreDepartment),
		CategoryBadge(domain.CategoryOtherDepartment),
	}
	return Dim("Legenda: ") + strings.Join(parts, "   ") + "\n"
}
