package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Status markers shared by the grid, tree and plan views.
const (
	MarkCompleted  = "✔"
	MarkInProgress = "▶"
	MarkPending    = "·"
	MarkPlanned    = "★"
	MarkLink       = "⛓"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// StatusMark returns the single-glyph marker for a status.
func StatusMark(status domain.ProgressStatus) string {
	switch status {
	case domain.StatusCompleted:
		return MarkCompleted
	case domain.StatusInProgress:
		return MarkInProgress
	default:
		return MarkPending
	}
}

// StatusPill returns a colored status indicator such as "✔ Concluída".
func StatusPill(status domain.ProgressStatus) string {
	text := StatusMark(status) + " " + status.Label()
	if status == domain.StatusPending {
		return Dim(text)
	}
	return StatusColor(status).Render(text)
}

// CategoryBadge returns the legend label of a category in its style.
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Render(c.Label())
}

// Credits renders "4 CR".
func Credits(n int) string {
	return fmt.Sprintf("%d CR", n)
}

// Truncate shortens s to at most width visible runes, marking the cut with "…".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// SemesterLabel renders a 0-based semester index as "3º".
func SemesterLabel(semester int) string {
	return fmt.Sprintf("%dº", semester+1)
}
