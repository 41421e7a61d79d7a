package model

import "time"

// Shared defaults used by the tracker, the session and the CLI config.
const (
	DefaultStartElixir  = 5.0
	MinElixir           = 0
	DefaultMaxElixir    = 10
	DefaultRegenPeriod  = 2.8 // seconds of wall clock per elixir
	DefaultTickInterval = 1 * time.Second
	DefaultHistoryLimit = 30

	DefaultArtBaseURL     = "https://royaleapi.github.io/cr-api-assets/cards"
	DefaultArtTimeout     = 3 * time.Second
	DefaultArtConcurrency = 8
)

// Card cost bounds.
const (
	MinCost = 1
	MaxCost = 8
)

// Regeneration periods for the single, double and triple elixir phases.
const (
	RegenSingle = DefaultRegenPeriod
	RegenDouble = DefaultRegenPeriod / 2
	RegenTriple = DefaultRegenPeriod / 3
)

// RegenModes lists the regeneration periods the UI cycles through.
var RegenModes = []float64{RegenSingle, RegenDouble, RegenTriple}

// RegenModeName returns a short label for a regeneration period.
func RegenModeName(period float64) string {
	switch period {
	case RegenSingle:
		return "1x"
	case RegenDouble:
		return "2x"
	case RegenTriple:
		return "3x"
	}
	return "custom"
}
