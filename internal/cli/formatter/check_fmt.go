package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/curriculum"
)

// FormatUnresolved renders the data-quality report of a curriculum.
func FormatUnresolved(g *curriculum.Graph, refs []curriculum.UnresolvedRef) string {
	var b strings.Builder
	b.WriteString(Header("Verificação do Currículo"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d disciplinas (%d obrigatórias, %d optativas), %d referências não resolvidas",
		g.Len(), len(g.Mandatory()), len(g.Optional()), len(refs))))
	b.WriteString("\n")

	if len(refs) == 0 {
		b.WriteString(StyleGreen.Render(MarkCompleted + " Todas as referências apontam para disciplinas conhecidas."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(refs))
	for _, r := range refs {
		kind := "pré-requisito"
		if r.Kind == curriculum.RefCorequisite {
			kind = "correquisito"
		}
		rows = append(rows, []string{r.From, g.DisplayName(r.From), StyleRed.Render(r.Code), kind})
	}
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"CÓDIGO", "DISCIPLINA", "REFERÊNCIA", "TIPO"}, rows))
	return b.String()
}
