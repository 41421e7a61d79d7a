package catalog

import (
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/model"
)

// Filter returns the cards passing both predicates of f, in input order.
// A card passes when f.Cost is NoCostFilter or equals the card's cost, and
// f.Search is empty or a case-insensitive substring of the card's name.
func Filter(cards []model.Card, f model.FilterState) []model.Card {
	needle := strings.ToLower(f.Search)
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if f.Cost != model.NoCostFilter && c.Cost != f.Cost {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Slug derives the image lookup key for a card name: lower-case, with every
// run of characters outside [a-z0-9] collapsed to one hyphen.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inRun := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}
	return b.String()
}
