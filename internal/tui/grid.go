package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/cardart"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// gridColumns returns how many card cells fit side by side.
func (m *TrackerModel) gridColumns() int {
	cols := (m.width - 4) / cardCellWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// gridHeight returns the height of the bordered card grid section.
func (m *TrackerModel) gridHeight() int {
	return m.height - topHeight - filterHeight - playsHeight - statusLineHeight
}

// gridRows returns how many rows of cards are rendered at once.
func (m *TrackerModel) gridRows() int {
	rows := m.gridHeight() - 2
	if rows < 1 {
		return 1
	}
	return rows
}

// ensureCursorVisible scrolls the grid so the cursor row is on screen.
func (m *TrackerModel) ensureCursorVisible() {
	cols := m.gridColumns()
	rows := m.gridRows()
	row := m.cursor / cols

	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}

	totalRows := (len(m.visible) + cols - 1) / cols
	if maxScroll := totalRows - rows; m.scrollRow > maxScroll {
		m.scrollRow = max(0, maxScroll)
	}
}

// renderCardGrid renders the visible cards in rows, highlighting the cursor.
func (m *TrackerModel) renderCardGrid(width, height int) string {
	m.ensureCursorVisible()

	if len(m.visible) == 0 {
		empty := helpStyle.Render("No cards match the filter (esc clears)")
		return sectionStyle.Width(width - 2).Height(height - 2).Render(empty)
	}

	cols := m.gridColumns()
	rows := m.gridRows()

	var lines []string
	for r := m.scrollRow; r < m.scrollRow+rows; r++ {
		start := r * cols
		if start >= len(m.visible) {
			break
		}
		end := min(start+cols, len(m.visible))

		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCardCell(m.visible[i], i == m.cursor))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	return activeSectionStyle.
		Width(width - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

// missingArtMarker stands in for a card image that could not be found.
const missingArtMarker = "◌"

// cardLabel fits the card name to width and picks its style. Cards whose
// art lookup missed are dimmed and marked instead of hidden.
func (m *TrackerModel) cardLabel(card model.Card, width int, base lipgloss.Style) (string, lipgloss.Style) {
	if m.art.Status(card.Name) == cardart.StatusMissing {
		return missingArtMarker + " " + truncate(card.Name, width-2), cardMissingArtStyle
	}
	return truncate(card.Name, width), base
}

func (m *TrackerModel) renderCardCell(card model.Card, selected bool) string {
	name, style := m.cardLabel(card, cardCellWidth-5, cardStyle)
	if selected {
		style = cardSelectedStyle
	}
	text := fmt.Sprintf(" %-*s %d ", cardCellWidth-5, name, card.Cost)
	return style.Render(text) + " "
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
