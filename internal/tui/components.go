package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "Clash!" with a purple to pink gradient.
func renderBranding() string {
	colors := []string{
		"#7B2FF7", // (C)
		"#9B30E8", // (l)
		"#B932D9", // (a)
		"#D534C9", // (s)
		"#EC36B5", // (h)
		"#FF3A9D", // (!)
	}

	chars := []string{"C", "l", "a", "s", "h", "!"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}

	return result
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *TrackerModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := m.width
	narrow := w < 80
	medium := w < 120

	leftText := "[Tracker]"
	var statusText string
	switch {
	case m.searchActive:
		leftText = "[Search]"
		if narrow {
			statusText = "Enter: Apply • ESC: Cancel"
		} else {
			statusText = "Type card name • Enter: Apply • ESC: Cancel"
		}
	case narrow:
		statusText = "?: Help • Enter: Play • r: Reset • q: Quit"
	case medium:
		statusText = "?: Help • Enter: Play • /: Search • 1-8: Cost • r: Reset • d: Regen • q: Quit"
	default:
		statusText = "?: Help • ↑↓←→: Move • Enter: Play • /: Search • 1-8: Cost • 0: All • r: Reset • R: Reset all • +/-: Cap • d: Regen • q: Quit"
	}

	var rightParts []string
	if m.lastAction != "" {
		rightParts = append(rightParts, m.lastAction)
	}
	if m.art.Enabled() && !narrow {
		rightParts = append(rightParts, m.renderArtIndicator())
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		rightText = renderBranding()
		rightWidth = lipgloss.Width(rightText) + 2
	}

	centerWidth := w - leftWidth - rightWidth
	if centerWidth < 0 {
		centerWidth = 0
	}
	if lipgloss.Width(statusText) > centerWidth {
		statusText = truncate(statusText, max(0, centerWidth-1))
	}

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}

// renderArtIndicator shows whether card art is reachable.
func (m *TrackerModel) renderArtIndicator() string {
	color := ColorYellow // still probing
	if m.artChecked {
		color = ColorGreen
		if m.artMissing > 0 {
			color = ColorRed
		}
	}
	dot := lipgloss.NewStyle().Background(ColorNavy).Foreground(color).Render("●")
	return dot + " art"
}
