package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/elixir"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	elixirPanelWidth = 34
	topHeight        = 9 // bordered elixir box and cost chart
	playsHeight      = 3 // bordered recent plays strip
	filterHeight     = 1
	statusLineHeight = 1
	cardCellWidth    = 22
	recentNameWidth  = 24
)

// renderElixirPanel renders the current estimate, its bounds and the
// regeneration mode.
func (m *TrackerModel) renderElixirPanel(width, height int) string {
	inner := width - 4
	snap := m.snap

	value := elixirValueStyle.Render(snap.Display) +
		helpStyle.Render(fmt.Sprintf(" / %d", snap.Max))

	lines := []string{
		chartTitleStyle.Render("Elixir"),
		value,
		renderGauge(snap.Elixir, snap.Max, inner),
		fmt.Sprintf("Regen %s  %ss  +%.2f/tick",
			model.RegenModeName(snap.RegenPeriod), elixir.Format(snap.RegenPeriod), snap.PerTick),
		fmt.Sprintf("Plays %d/%d  spent %d", len(snap.History), snap.HistoryCap, snap.Spent),
		helpStyle.Render("r: reset to 5.0  +/-: cap"),
	}

	return sectionStyle.
		Width(width - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

// renderGauge renders value as a filled bar of the given width.
func renderGauge(value float64, capacity, width int) string {
	if width < 1 {
		return ""
	}
	filled := 0
	if capacity > 0 {
		filled = int(math.Round(value / float64(capacity) * float64(width)))
	}
	filled = min(width, max(0, filled))

	full := lipgloss.NewStyle().Foreground(ColorPurple).Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(ColorDim).Render(strings.Repeat("░", width-filled))
	return full + empty
}

// renderCostPanel wraps the cost distribution deck in a section box.
func (m *TrackerModel) renderCostPanel(width, height int) string {
	deck := NewCostDeck()
	deck.SetData(m.snap)
	ctx := ViewContext{ContentWidth: width - 4, ContentHeight: height - 2}
	return sectionStyle.
		Width(width - 2).
		Height(height - 2).
		Render(deck.Render(ctx))
}

// renderFilterBar shows the cost filter keys and the search input.
func (m *TrackerModel) renderFilterBar(width int) string {
	f := m.session.Filter()

	var costs []string
	all := filterOffStyle.Render(" all ")
	if f.Cost == model.NoCostFilter {
		all = filterOnStyle.Render(" all ")
	}
	costs = append(costs, all)
	for c := model.MinCost; c <= model.MaxCost; c++ {
		label := fmt.Sprintf(" %d ", c)
		if f.Cost == c {
			costs = append(costs, filterOnStyle.Render(label))
		} else {
			costs = append(costs, filterOffStyle.Render(label))
		}
	}

	var search string
	switch {
	case m.searchActive:
		search = m.searchInput.View()
	case f.Search != "":
		search = "/ " + f.Search
	default:
		search = helpStyle.Render("/ to search")
	}

	count := helpStyle.Render(fmt.Sprintf("%d cards", len(m.visible)))
	bar := "Cost " + strings.Join(costs, "") + "  " + search + "  " + count
	return lipgloss.NewStyle().Width(width).MaxHeight(filterHeight).Render(bar)
}

// renderRecentPlays renders the play history, newest first, on one line.
func (m *TrackerModel) renderRecentPlays(width int) string {
	inner := width - 4
	label := chartTitleStyle.Render("Recent ")

	var parts []string
	used := lipgloss.Width(label)
	for _, c := range m.snap.History {
		name, style := m.cardLabel(c, recentNameWidth, cardStyle)
		part := style.Render(name) + " " + costStyle.Render(fmt.Sprintf("%d", c.Cost))
		w := lipgloss.Width(part) + 3
		if used+w > inner {
			parts = append(parts, helpStyle.Render("…"))
			break
		}
		parts = append(parts, part)
		used += w
	}

	body := helpStyle.Render("No plays yet")
	if len(parts) > 0 {
		body = strings.Join(parts, helpStyle.Render(" · "))
	}
	return sectionStyle.Width(width - 2).Render(label + body)
}
