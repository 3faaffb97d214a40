package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	browseCellWidth  = 13
	browseLabelWidth = 4
)

var colorCellText = lipgloss.Color("#282828")

// Highlight styles of the browser cells.
var (
	styleCursorCell = lipgloss.NewStyle().Foreground(colorCellText).Background(formatter.ColorYellow).Bold(true)
	stylePrereqCell = lipgloss.NewStyle().Foreground(colorCellText).Background(formatter.ColorBlue)
	styleSuccCell   = lipgloss.NewStyle().Foreground(colorCellText).Background(formatter.ColorGreen)
	stylePlanCell   = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
)

// statusSavedMsg reports the outcome of a status change.
type statusSavedMsg struct {
	code   string
	status domain.ProgressStatus
	err    error
}

// browseModel is the interactive flowchart. The cursor walks the mandatory
// grid and then the optional disciplines, laid out below it in rows of the
// same width. Every move updates the hovered discipline of the service.
type browseModel struct {
	app  *App
	keys browseKeyMap
	help help.Model

	row, col    int
	showDetails bool
	message     string
	err         error
	width       int
	quitting    bool
}

func newBrowseModel(app *App) browseModel {
	m := browseModel{
		app:  app,
		keys: defaultBrowseKeyMap(),
		help: help.New(),
	}
	m.hover()
	return m
}

func (m browseModel) graph() *curriculum.Graph { return m.app.Flowchart.Graph() }

func (m browseModel) optionalRows() int {
	g := m.graph()
	if g.Semesters() == 0 {
		return 0
	}
	return (len(g.Optional()) + g.Semesters() - 1) / g.Semesters()
}

func (m browseModel) totalRows() int {
	return m.graph().Rows() + m.optionalRows()
}

// at returns the discipline under grid coordinates, optional rows included.
func (m browseModel) at(r, c int) (domain.Discipline, bool) {
	g := m.graph()
	if r < g.Rows() {
		return g.Cell(r, c)
	}
	opt := g.Optional()
	i := (r-g.Rows())*g.Semesters() + c
	if i < 0 || i >= len(opt) {
		return domain.Discipline{}, false
	}
	return opt[i], true
}

func (m browseModel) current() (domain.Discipline, bool) {
	return m.at(m.row, m.col)
}

func (m *browseModel) hover() {
	code := ""
	if d, ok := m.current(); ok {
		code = d.Code
	}
	m.app.Flowchart.SetHovered(code)
}

func (m *browseModel) move(dr, dc int) {
	m.row = max(0, min(m.row+dr, m.totalRows()-1))
	m.col = max(0, min(m.col+dc, m.graph().Semesters()-1))
	m.hover()
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case statusSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.message = fmt.Sprintf("%s → %s", msg.code, msg.status.Label())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc && m.showDetails {
		m.showDetails = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.app.Flowchart.SetHovered("")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Details):
		m.showDetails = !m.showDetails
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ClearPlan):
		m.app.Flowchart.ClearPlanned()
		m.message = "Plano limpo."
	case key.Matches(msg, m.keys.Plan):
		m.togglePlanned()
	case key.Matches(msg, m.keys.Completed):
		return m, m.setStatus(domain.StatusCompleted)
	case key.Matches(msg, m.keys.InProgress):
		return m, m.setStatus(domain.StatusInProgress)
	case key.Matches(msg, m.keys.Pending):
		return m, m.setStatus(domain.StatusPending)
	}
	return m, nil
}

func (m *browseModel) togglePlanned() {
	d, ok := m.current()
	if !ok {
		return
	}
	planned, err := m.app.Flowchart.TogglePlanned(d.Code)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	if planned {
		m.message = d.Code + " adicionada ao plano."
	} else {
		m.message = d.Code + " removida do plano."
	}
}

func (m browseModel) setStatus(status domain.ProgressStatus) tea.Cmd {
	d, ok := m.current()
	if !ok {
		return nil
	}
	svc := m.app.Flowchart
	return func() tea.Msg {
		err := svc.SetStatus(context.Background(), d.Code, status)
		return statusSavedMsg{code: d.Code, status: status, err: err}
	}
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	svc := m.app.Flowchart
	g := m.graph()
	cells := cellContext{
		highlight: svc.Highlight(),
		progress:  svc.Progress(),
		planned:   make(map[string]bool),
	}
	for _, code := range svc.Planned() {
		cells.planned[code] = true
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat(" ", browseLabelWidth))
	for c := 0; c < g.Semesters(); c++ {
		b.WriteString(formatter.StyleHeader.Width(browseCellWidth).Render(formatter.SemesterLabel(c)))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	for r := 0; r < g.Rows(); r++ {
		b.WriteString(m.renderRow(r, domain.GridPosition{Row: r}.RowLetter(), cells))
	}
	b.WriteString(lipgloss.NewStyle().Width(browseLabelWidth).Render(formatter.Bold("CR")))
	for _, credits := range g.CreditsPerSemester() {
		b.WriteString(lipgloss.NewStyle().Width(browseCellWidth).Render(formatter.Dim(fmt.Sprint(credits))))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if m.optionalRows() > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.StyleHeader.Render("OPTATIVAS"))
		b.WriteString("\n")
		for r := g.Rows(); r < m.totalRows(); r++ {
			b.WriteString(m.renderRow(r, "", cells))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.FormatLegend())
	b.WriteString(strings.Join([]string{
		stylePrereqCell.Render(" Pré-requisito "),
		styleSuccCell.Render(" Dependência "),
		styleCursorCell.Render(" Selecionada "),
	}, " "))
	b.WriteString("\n\n")

	b.WriteString(m.renderSelection())
	b.WriteString("\n")
	b.WriteString(formatter.FormatPlan(svc.Plan()))

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render("Erro: " + m.err.Error()))
		b.WriteString("\n")
	case m.message != "":
		b.WriteString("\n")
		b.WriteString(formatter.Dim(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// cellContext carries the snapshots one frame is rendered from.
type cellContext struct {
	highlight curriculum.Highlight
	progress  curriculum.StatusReader
	planned   map[string]bool
}

func (m browseModel) renderRow(r int, label string, cells cellContext) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(browseLabelWidth).Render(formatter.Bold(label)))
	for c := 0; c < m.graph().Semesters(); c++ {
		b.WriteString(m.renderCell(r, c, cells))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) renderCell(r, c int, cells cellContext) string {
	isCursor := r == m.row && c == m.col
	d, ok := m.at(r, c)
	if !ok {
		if isCursor {
			return styleCursorCell.Width(browseCellWidth).Render("—")
		}
		return formatter.StyleDim.Width(browseCellWidth).Render("—")
	}

	status := cells.progress.StatusOf(d.Code)
	text := formatter.StatusMark(status) + " " + d.Code
	if cells.planned[d.Code] {
		text += formatter.MarkPlanned
	}

	style := formatter.StatusColor(status)
	if status == domain.StatusPending {
		style = formatter.CategoryStyle(d.Category)
	}
	switch {
	case isCursor:
		style = styleCursorCell
	case cells.highlight.IsPrerequisite(d.Code):
		style = stylePrereqCell
	case cells.highlight.IsSuccessor(d.Code):
		style = styleSuccCell
	case cells.planned[d.Code]:
		style = stylePlanCell
	}
	return style.Width(browseCellWidth).Render(text)
}

func (m browseModel) renderHeader() string {
	ov := m.app.Flowchart.Overview()
	title := formatter.StylePurple.Render("fluxo") + " " + formatter.Dim("›") + " " + formatter.Dim("Fluxograma")
	summary := formatter.Dim(fmt.Sprintf("%.0f%% · %d/%d CR", ov.Percentage, ov.CompletedCredits, ov.TotalCredits))
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "  " + summary + "\n" + sep
}

// renderSelection shows the details panel for the discipline under the
// cursor, or a one-line summary when the panel is closed.
func (m browseModel) renderSelection() string {
	d, ok := m.current()
	if !ok {
		return formatter.Dim("Célula vazia.") + "\n"
	}
	if m.showDetails {
		details, err := m.app.Flowchart.Details(d.Code)
		if err == nil {
			return formatter.FormatDisciplineDetails(details) + "\n"
		}
	}
	status := m.app.Flowchart.Progress().StatusOf(d.Code)
	return fmt.Sprintf("%s  %s  %s  %s  %s\n",
		formatter.Bold(d.Label()), d.Code, d.Name, formatter.Dim(formatter.Credits(d.Credits)), formatter.StatusPill(status))
}
