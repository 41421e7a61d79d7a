package tui

import tea "github.com/charmbracelet/bubbletea"

// ViewContext provides read-only context to decks for rendering.
type ViewContext struct {
	ContentWidth  int
	ContentHeight int
}

// Action identifies what a deck or handler wants the tracker view to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionSetStatus
)

// ActionMsg is returned by handlers and decks to communicate with the
// tracker view without mutating it directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Cmd.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
