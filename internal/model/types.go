package model

import "time"

// Card is one entry of the card catalog. Name is unique within the catalog
// and Cost is in [MinCost, MaxCost].
type Card struct {
	Name string `yaml:"name" json:"name"`
	Cost int    `yaml:"cost" json:"cost"`
}

// NoCostFilter disables the cost predicate of a FilterState.
const NoCostFilter = 0

// FilterState holds the transient search/filter UI state.
// It never influences the tracked elixir or the play history.
type FilterState struct {
	Cost   int    // NoCostFilter = any cost
	Search string // case-insensitive substring, "" = any name
}

// Active reports whether any predicate is set.
func (f FilterState) Active() bool {
	return f.Cost != NoCostFilter || f.Search != ""
}

// Snapshot is a read-only copy of a session handed to the presentation layer.
type Snapshot struct {
	Elixir      float64
	Display     string // Elixir rounded to one decimal
	Min         int
	Max         int
	RegenPeriod float64
	PerTick     float64 // elixir added by one tick
	History     []Card  // newest first
	HistoryCap  int     // most entries History can hold
	Spent       int     // total cost of History
	Filter      FilterState
	At          time.Time
}
