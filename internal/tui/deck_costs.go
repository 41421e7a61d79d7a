package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/history"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// CostDeck shows how the opponent's recent plays spread over card costs.
type CostDeck struct {
	counts []int // index = cost - 1
	total  int
}

// NewCostDeck creates an empty cost distribution deck.
func NewCostDeck() *CostDeck {
	return &CostDeck{counts: make([]int, model.MaxCost-model.MinCost+1)}
}

func (d *CostDeck) ID() string    { return "costs" }
func (d *CostDeck) Title() string { return "Cost Distribution" }

// SetData recomputes the distribution from the recent plays.
func (d *CostDeck) SetData(snap model.Snapshot) {
	d.counts = history.CostCounts(snap.History)
	d.total = snap.Spent
}

// Render draws one bar per cost with the cost labels underneath.
func (d *CostDeck) Render(ctx ViewContext) string {
	title := chartTitleStyle.Render(d.Title())
	if d.total == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, helpStyle.Render("No plays yet"))
	}

	bars := len(d.counts)
	gap := 1
	barWidth := (ctx.ContentWidth - (bars-1)*gap) / bars
	if barWidth < 1 {
		barWidth = 1
	}
	if barWidth > 4 {
		barWidth = 4
	}
	chartWidth := bars*barWidth + (bars-1)*gap

	chartHeight := ctx.ContentHeight - 3 // title, labels, summary
	if chartHeight < 2 {
		chartHeight = 2
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(gap),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().Foreground(ColorPurple).Background(ColorPurple)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorDim).Background(ColorDim)
	for i, n := range d.counts {
		style := barStyle
		if n == 0 {
			style = emptyStyle
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: fmt.Sprintf("%d", i+model.MinCost), Value: float64(n), Style: style},
			},
		})
	}
	bc.Draw()

	var labels strings.Builder
	for i := range d.counts {
		if i > 0 {
			labels.WriteString(strings.Repeat(" ", gap))
		}
		labels.WriteString(lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, fmt.Sprintf("%d", i+model.MinCost)))
	}

	summary := helpStyle.Render(fmt.Sprintf("%d elixir spent", d.total))
	return lipgloss.JoinVertical(lipgloss.Left, title, bc.View(), costStyle.Render(labels.String()), summary)
}
