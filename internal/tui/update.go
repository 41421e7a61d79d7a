package tui

import (
	"fmt"

	"github.com/tinytelemetry/clash-analyzer/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case SessionUpdateMsg:
		// A tick pulled before an intent can arrive after syncSnapshot.
		if snap := model.Snapshot(msg); !snap.At.Before(m.snap.At) {
			m.snap = snap
		}
		return m, waitForSessionUpdate(m.session.Updates())

	case sessionClosedMsg:
		return m, nil

	case artCheckedMsg:
		m.artChecked = true
		m.artMissing = msg.missing
		if msg.missing > 0 {
			m.lastAction = fmt.Sprintf("card art missing for %d cards", msg.missing)
		}
		return m, nil

	case ActionMsg:
		switch msg.Action {
		case ActionPushModal:
			if modal, ok := msg.Payload.(Modal); ok {
				m.PushModal(modal)
			}
		case ActionSetStatus:
			if text, ok := msg.Payload.(string); ok {
				m.lastAction = text
			}
		}
		return m, nil
	}

	return m, nil
}
