package cli

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap lists the bindings of the flowchart browser. It implements
// help.KeyMap.
type browseKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Plan       key.Binding
	Completed  key.Binding
	InProgress key.Binding
	Pending    key.Binding
	Details    key.Binding
	ClearPlan  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous semester")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next semester")),
		Plan:       key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle planned")),
		Completed:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completed")),
		InProgress: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "in progress")),
		Pending:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pending")),
		Details:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		ClearPlan:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear plan")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Plan, k.Completed, k.InProgress, k.Pending, k.Details, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Plan, k.ClearPlan, k.Details},
		{k.Completed, k.InProgress, k.Pending},
		{k.Help, k.Quit},
	}
}
