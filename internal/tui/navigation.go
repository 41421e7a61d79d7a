package tui

import (
	"fmt"
	"strconv"

	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: modal stack first, then inline
// handlers (search), then global tracker shortcuts.
func (m *TrackerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	// Inline handlers (search input).
	for _, entry := range m.inlineHandlers {
		if entry.isActive(m) {
			handled, cmd := entry.handler.HandleKey(m, msg)
			if handled {
				return m, cmd
			}
			break
		}
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles tracker-level shortcuts.
// Only reached when no modal is on the stack and search is not focused.
func (m *TrackerModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Escape):
		if m.session.Filter().Active() || m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.session.ClearFilter()
			m.refreshVisible()
			m.lastAction = "filters cleared"
		}
		return m, nil

	case key.Matches(msg, k.Help):
		return m, actionMsg(ActionMsg{Action: ActionPushModal, Payload: NewHelpModal(m.keys)})

	case key.Matches(msg, k.Search):
		m.searchActive = true
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, k.CostFilter):
		cost, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		m.session.ToggleCostFilter(cost)
		m.refreshVisible()
		return m, nil

	case key.Matches(msg, k.AllCosts):
		m.session.SetCostFilter(model.NoCostFilter)
		m.refreshVisible()
		return m, nil

	case key.Matches(msg, k.Tap):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		m.session.Tap(card)
		m.syncSnapshot()
		m.lastAction = fmt.Sprintf("played %s (-%d)", card.Name, card.Cost)
		return m, nil

	case key.Matches(msg, k.Reset):
		m.session.Reset()
		m.syncSnapshot()
		m.lastAction = "elixir reset to " + m.snap.Display
		return m, nil

	case key.Matches(msg, k.ResetAll):
		m.session.ResetAll()
		m.syncSnapshot()
		m.lastAction = "session reset"
		return m, nil

	case key.Matches(msg, k.CapacityUp):
		m.changeCapacity(1)
		return m, nil

	case key.Matches(msg, k.CapacityDn):
		m.changeCapacity(-1)
		return m, nil

	case key.Matches(msg, k.RegenCycle):
		next := nextRegenPeriod(m.snap.RegenPeriod)
		m.session.SetRegenPeriod(next)
		m.syncSnapshot()
		m.lastAction = "regeneration " + model.RegenModeName(next)
		return m, nil

	case key.Matches(msg, k.Up):
		m.moveCursor(-m.gridColumns())
		return m, nil
	case key.Matches(msg, k.Down):
		m.moveCursor(m.gridColumns())
		return m, nil
	case key.Matches(msg, k.Left):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, k.Right):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, k.Home):
		m.cursor = 0
		m.scrollRow = 0
		return m, nil
	case key.Matches(msg, k.End):
		m.cursor = len(m.visible) - 1
		m.clampCursor()
		m.ensureCursorVisible()
		return m, nil
	}

	return m, nil
}

// changeCapacity moves the elixir cap by delta within the keyboard bounds.
func (m *TrackerModel) changeCapacity(delta int) {
	next := m.snap.Max + delta
	if next < minCapacity || next > maxCapacity {
		return
	}
	m.session.SetCapacity(next)
	m.syncSnapshot()
	m.lastAction = fmt.Sprintf("elixir cap %d", next)
}

// moveCursor moves the grid cursor by delta cards, stopping at the edges.
func (m *TrackerModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

// handleMouseEvent scrolls the grid on wheel events.
func (m *TrackerModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	for _, entry := range m.inlineHandlers {
		if entry.isActive(m) {
			handled, cmd := entry.handler.HandleMouse(m, msg)
			if handled {
				return m, cmd
			}
			break
		}
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.gridColumns())
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.gridColumns())
	}
	return m, nil
}
