package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// searchInputHandler feeds keystrokes into the search box. The session
// filter is updated on every keystroke; elixir and history are untouched.
type searchInputHandler struct{}

func (h searchInputHandler) HandleKey(m *TrackerModel, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "escape", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.session.SetSearch("")
		m.refreshVisible()
		return true, nil
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.session.SetSearch(m.searchInput.Value())
		m.refreshVisible()
		status := fmt.Sprintf("%d cards match %q", len(m.visible), m.searchInput.Value())
		return true, actionMsg(ActionMsg{Action: ActionSetStatus, Payload: status})
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.session.SetSearch(m.searchInput.Value())
		m.refreshVisible()
		return true, cmd
	}
}

func (h searchInputHandler) HandleMouse(_ *TrackerModel, _ tea.MouseMsg) (bool, tea.Cmd) {
	return true, nil // swallow mouse events during search input
}
