package modes

import "github.com/charmbracelet/bubbles/key"

// OverviewKeyMap lists the bindings of the search screen
type OverviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DetailsKeyMap lists the bindings of the forecast screen
type DetailsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Pager   key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// OverviewKeys are the default overview bindings
var OverviewKeys = OverviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show forecast"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// DetailsKeys are the default details bindings
var DetailsKeys = DetailsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Pager: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "full table"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k OverviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap
func (k OverviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Cancel, k.Quit}}
}

// ShortHelp implements help.KeyMap
func (k DetailsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Pager, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k DetailsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Pager},
		{k.Back, k.Help, k.Quit},
	}
}
