// Package history keeps the bounded, newest-first log of tapped cards.
package history

import "github.com/tinytelemetry/clash-analyzer/internal/model"

// History is a most-recent-first list of played cards holding at most
// limit entries. It is not safe for concurrent use.
type History struct {
	entries []model.Card
	limit   int
}

// New creates an empty history. A non-positive limit uses the default.
func New(limit int) *History {
	if limit <= 0 {
		limit = model.DefaultHistoryLimit
	}
	return &History{
		entries: make([]model.Card, 0, limit+1),
		limit:   limit,
	}
}

// Record prepends card. When the log grows past its limit the single
// oldest entry is dropped from the tail.
func (h *History) Record(card model.Card) {
	h.entries = append(h.entries, model.Card{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = card
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns a copy of the log, newest first.
func (h *History) Entries() []model.Card {
	return append([]model.Card(nil), h.entries...)
}

func (h *History) Len() int   { return len(h.entries) }
func (h *History) Limit() int { return h.limit }

// Clear empties the log.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// CostCounts returns how many recorded plays fall on each cost.
// Index i holds the count for cost i+MinCost.
func (h *History) CostCounts() []int {
	return CostCounts(h.entries)
}

// CostCounts buckets cards by cost. Index i holds the count for cost
// i+MinCost; out-of-range costs are ignored.
func CostCounts(cards []model.Card) []int {
	counts := make([]int, model.MaxCost-model.MinCost+1)
	for _, c := range cards {
		if c.Cost < model.MinCost || c.Cost > model.MaxCost {
			continue
		}
		counts[c.Cost-model.MinCost]++
	}
	return counts
}

// TotalCost sums the cost of every recorded play.
func (h *History) TotalCost() int {
	total := 0
	for _, c := range h.entries {
		total += c.Cost
	}
	return total
}
