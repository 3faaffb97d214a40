package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls horizontal placement of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableAligned(headers, rows, nil)
}

// RenderTableAligned is RenderTable with per-column alignment. Missing
// entries in align default to AlignLeft. A nil row renders as a separator.
func RenderTableAligned(headers []string, rows [][]string, align []Align) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	// Visible widths, ignoring ANSI escape sequences.
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	alignOf := func(i int) Align {
		if i < len(align) {
			return align[i]
		}
		return AlignLeft
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(pad(style(cell), lipgloss.Width(cell), widths[i], alignOf(i), i == cols-1))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}
	separator := func() {
		for i, w := range widths {
			b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	separator()
	for _, row := range rows {
		if row == nil {
			separator()
			continue
		}
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}

// pad places styled (of visible width w) in a field of width. Trailing
// padding is dropped on the last left-aligned column.
func pad(styled string, w, width int, a Align, last bool) string {
	gap := width - w
	if gap <= 0 {
		return styled
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", gap) + styled
	case AlignCenter:
		left := gap / 2
		right := gap - left
		if last {
			right = 0
		}
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", right)
	default:
		if last {
			return styled
		}
		return styled + strings.Repeat(" ", gap)
	}
}
