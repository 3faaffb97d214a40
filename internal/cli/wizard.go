package cli

import (
	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fluxoHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func fluxoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a yes/no confirmation form.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sim").
				Negative("Não").
				Value(result),
		),
	).WithTheme(fluxoHuhTheme()).WithShowHelp(false)
}

// wizardCRAARow asks for the fields of one worksheet row. Values are kept as
// typed; rows that do not parse are ignored by the projection.
func wizardCRAARow(row *craa.Row) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Disciplina").
				Placeholder("Nome da disciplina").
				Value(&row.Name),
			huh.NewInput().
				Title("Créditos").
				Placeholder("4").
				Value(&row.Credits),
			huh.NewInput().
				Title("Nota").
				Description("De 0 a 10").
				Placeholder("8.5").
				Value(&row.Grade),
		),
	).WithTheme(fluxoHuhTheme()).WithShowHelp(false)
}

// wizardCRAACurrent asks for the current CRAA and the credits already taken.
func wizardCRAACurrent(ws *craa.Worksheet) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CRAA atual").
				Placeholder("7.5").
				Value(&ws.CurrentCRAA),
			huh.NewInput().
				Title("Créditos cursados").
				Placeholder("120").
				Value(&ws.CurrentCredits),
		),
	).WithTheme(fluxoHuhTheme()).WithShowHelp(false)
}
