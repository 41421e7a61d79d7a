package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderModalFrame renders a scrollable, centered modal around content.
func renderModalFrame(vp *viewport.Model, title, content, status string, width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	// Account for borders and headers
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, helpStyle.Render(status))

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPurple).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// modalStatusBar renders the key hints shown under every modal.
func modalStatusBar(extra ...string) string {
	items := append([]string{"up/down/Wheel: Scroll", "PgUp/PgDn: Page"}, extra...)
	items = append(items, "ESC: Close")
	return strings.Join(items, " | ")
}
