package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorNavy   = lipgloss.Color("17")
	ColorBlue   = lipgloss.Color("39")
	ColorPurple = lipgloss.Color("171") // elixir
	ColorPink   = lipgloss.Color("213")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorWhite  = lipgloss.Color("15")
	ColorGray   = lipgloss.Color("240")
	ColorDim    = lipgloss.Color("238")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	activeSectionStyle = sectionStyle.
				BorderForeground(ColorPurple)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	elixirValueStyle = lipgloss.NewStyle().
				Foreground(ColorPink).
				Bold(true)

	cardStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	cardSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(ColorPurple).
				Bold(true)

	// Cards whose art lookup failed are dimmed instead of hidden.
	cardMissingArtStyle = lipgloss.NewStyle().
				Foreground(ColorDim)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorPurple)

	filterOnStyle = lipgloss.NewStyle().
			Foreground(ColorNavy).
			Background(ColorYellow).
			Bold(true)

	filterOffStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
