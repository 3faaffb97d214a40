package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/app"
)

// FormatDisciplineDetails renders the details panel of one discipline.
func FormatDisciplineDetails(d *app.DisciplineDetails) string {
	disc := d.Discipline
	var b strings.Builder

	b.WriteString(Bold(disc.Name))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s • %d Créditos", disc.Code, disc.Credits)))
	b.WriteString("\n\n")

	position := "Optativa"
	if disc.IsMandatory() {
		position = fmt.Sprintf("%s (%s período)", disc.Label(), SemesterLabel(disc.Position.Semester))
	}
	fields := [][2]string{
		{"Status", StatusPill(d.Status)},
		{"Posição", position},
		{"Departamento", CategoryBadge(disc.Category)},
	}
	if d.Planned {
		fields = append(fields, [2]string{"Plano", StylePurple.Render(MarkPlanned + " Planejada")})
	}
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-13s", f[0]+":")), f[1]))
	}

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Pré-requisitos"))
	b.WriteString("\n")
	if len(d.Prerequisites) == 0 {
		b.WriteString(Dim("Nenhum pré-requisito."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTree(relatedItems(d.Prerequisites)))
	}

	if len(d.Corequisites) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("Correquisitos"))
		b.WriteString("\n")
		b.WriteString(RenderTree(relatedItems(d.Corequisites)))
	}

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Dependências"))
	b.WriteString("\n")
	if len(d.Successors) == 0 {
		b.WriteString(Dim("Nenhuma disciplina depende desta."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTree(relatedItems(d.Successors)))
	}

	if d.PortalURL != "" {
		b.WriteString("\n")
		b.WriteString(StyleBlue.Render(MarkLink + " Ver no Portal do Curso (SIGAA): " + d.PortalURL))
	}

	return RenderBox("Detalhes da Disciplina", strings.TrimRight(b.String(), "\n"))
}

func relatedItems(related []app.RelatedDiscipline) []TreeItem {
	items := make([]TreeItem, 0, len(related))
	for i, r := range related {
		items = append(items, TreeItem{
			Title:   r.Name,
			Level:   1,
			IsLast:  i == len(related)-1,
			Status:  r.Status,
			Detail:  r.Code,
			Missing: !r.Resolved,
		})
	}
	return items
}
