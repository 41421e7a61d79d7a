// Package catalog holds the read-only card table and the pure card filter.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var cardsYAML []byte

type cardFile struct {
	Cards []model.Card `yaml:"cards"`
}

// table is parsed once on first use and never mutated afterwards.
var table = sync.OnceValue(func() []model.Card {
	cards, err := parse(cardsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded card table: %v", err))
	}
	return cards
})

func parse(data []byte) ([]model.Card, error) {
	var f cardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing cards: %w", err)
	}
	if len(f.Cards) == 0 {
		return nil, fmt.Errorf("no cards defined")
	}

	seen := make(map[string]bool, len(f.Cards))
	for i, c := range f.Cards {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("card %d: empty name", i)
		}
		if c.Cost < model.MinCost || c.Cost > model.MaxCost {
			return nil, fmt.Errorf("card %q: cost %d outside [%d, %d]", c.Name, c.Cost, model.MinCost, model.MaxCost)
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return nil, fmt.Errorf("card %q: duplicate name", c.Name)
		}
		seen[key] = true
	}
	return f.Cards, nil
}

// All returns a copy of the catalog in display order.
func All() []model.Card {
	return append([]model.Card(nil), table()...)
}

// Len returns the number of cards in the catalog.
func Len() int {
	return len(table())
}
