package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/craa"
)

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("—")
	}
	return s
}

// FormatCRAA renders the worksheet and its projection.
func FormatCRAA(ws craa.Worksheet, p craa.Projection) string {
	var b strings.Builder

	b.WriteString(Header("Calculadora de CRAA"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("CRAA atual:       "), orPlaceholder(ws.CurrentCRAA)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Créditos cursados:"), orPlaceholder(ws.CurrentCredits)))

	rows := make([][]string, 0, len(ws.Rows))
	for i, r := range ws.Rows {
		name := r.Name
		if name == "" {
			name = Dim(fmt.Sprintf("Disciplina %d", i+1))
		}
		mark := Dim("ignorada")
		if r.Valid() {
			mark = StyleGreen.Render(MarkCompleted)
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), name, orPlaceholder(r.Credits), orPlaceholder(r.Grade), mark})
	}
	b.WriteString(RenderTableAligned([]string{"#", "DISCIPLINA", "CRÉDITOS", "NOTA", ""}, rows, []Align{AlignRight, AlignLeft, AlignRight, AlignRight}))
	b.WriteString("\n")

	value := StyleBlue.Bold(true).Render(p.String())
	b.WriteString(RenderBox("", "Seu CRAA projetado para o fim do período é: "+value))
	b.WriteString("\n")
	return b.String()
}
