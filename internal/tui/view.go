package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the tracker
func (m *TrackerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing tracker..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.renderTracker()
}

// renderTracker renders the main layout: elixir box and cost chart on top,
// then the filter bar, the card grid, recent plays and the status line.
func (m *TrackerModel) renderTracker() string {
	if m.height < 20 || m.width < 60 {
		return "Terminal too small. Resize to at least 60x20."
	}

	chartWidth := m.width - elixirPanelWidth
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderElixirPanel(elixirPanelWidth, topHeight),
		m.renderCostPanel(chartWidth, topHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.renderFilterBar(m.width),
		m.renderCardGrid(m.width, m.gridHeight()),
		m.renderRecentPlays(m.width),
		m.renderStatusLine(),
	)
}
