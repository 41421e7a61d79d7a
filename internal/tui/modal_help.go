package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/elixir"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal displays key bindings and how the estimate works.
type HelpModal struct {
	viewport viewport.Model
	content  string
}

// NewHelpModal builds the help text from the key map.
func NewHelpModal(keys KeyMap) *HelpModal {
	return &HelpModal{
		viewport: viewport.New(80, 20),
		content:  renderHelpContent(keys.FullHelp()),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			h.viewport.ScrollUp(1)
			return false, nil
		case "down", "j":
			h.viewport.ScrollDown(1)
			return false, nil
		case "pgup":
			h.viewport.HalfPageUp()
			return false, nil
		case "pgdown":
			h.viewport.HalfPageDown()
			return false, nil
		case "?", "q", "escape", "esc":
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				h.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				h.viewport.ScrollDown(1)
			}
		}
		return false, nil
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	return renderModalFrame(&h.viewport, "Help", h.content, modalStatusBar("?: Toggle Help"), width, height)
}

// helpSectionTitles name the FullHelp columns in order.
var helpSectionTitles = []string{"GRID", "ELIXIR", "FILTER"}

func renderHelpContent(groups [][]key.Binding) string {
	var b strings.Builder
	b.WriteString("Clash Analyzer\n\n")
	b.WriteString("Tap a card when the opponent plays it. Its cost is taken off the\n")
	b.WriteString("estimate and the card joins the recent plays strip. The estimate\n")
	b.WriteString("regenerates once per second and never leaves its bounds.\n")

	for i, column := range groups {
		title := "MORE"
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, binding := range column {
			writeBinding(&b, binding)
		}
	}

	b.WriteString("\nREGENERATION:\n")
	for _, period := range model.RegenModes {
		fmt.Fprintf(&b, "  %-14s - one elixir every %ss\n",
			model.RegenModeName(period), elixir.Format(period))
	}
	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "  %-14s - %s\n", h.Key, h.Desc)
}
