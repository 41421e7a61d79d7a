package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all tracker key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Grid navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Intents
	Tap        key.Binding
	Search     key.Binding
	CostFilter key.Binding
	AllCosts   key.Binding
	Reset      key.Binding
	ResetAll   key.Binding
	CapacityUp key.Binding
	CapacityDn key.Binding
	RegenCycle key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filters/close"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first card"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last card"),
		),

		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "opponent played card"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search cards"),
		),
		CostFilter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "toggle cost filter"),
		),
		AllCosts: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all costs"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset elixir to 5"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset elixir and history"),
		),
		CapacityUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise elixir cap"),
		),
		CapacityDn: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower elixir cap"),
		),
		RegenCycle: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle 1x/2x/3x elixir"),
		),
	}
}

// ShortHelp is shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Search, k.CostFilter, k.Reset, k.RegenCycle, k.Help, k.Quit}
}

// FullHelp is shown in the help modal, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Tap, k.Reset, k.ResetAll, k.CapacityUp, k.CapacityDn, k.RegenCycle},
		{k.Search, k.CostFilter, k.AllCosts, k.Escape, k.Help, k.Quit},
	}
}
