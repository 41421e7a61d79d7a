// Package elixir estimates an opponent's regenerating elixir.
//
// A Tracker is a plain state machine: every mutation clamps the value into
// [min, max] instead of failing. It is not safe for concurrent use; callers
// serialize access (see internal/session).
package elixir

import "github.com/tinytelemetry/clash-analyzer/internal/model"

// Tracker holds the estimated elixir value and its clamp policy.
type Tracker struct {
	value       float64
	min         float64
	max         float64
	regenPeriod float64
}

// NewTracker creates a tracker starting at start with the given capacity and
// regeneration period. Invalid capacity or period fall back to the defaults.
func NewTracker(start float64, max int, regenPeriod float64) *Tracker {
	if max < model.MinElixir+1 {
		max = model.DefaultMaxElixir
	}
	if regenPeriod <= 0 {
		regenPeriod = model.DefaultRegenPeriod
	}
	t := &Tracker{
		min:         model.MinElixir,
		max:         float64(max),
		regenPeriod: regenPeriod,
	}
	t.value = t.clamp(start)
	return t
}

// Tick advances the value by one tick's worth of regeneration.
func (t *Tracker) Tick() {
	t.value = t.clamp(t.value + 1.0/t.regenPeriod)
}

// Consume subtracts cost. The result floors at min; it never errors.
func (t *Tracker) Consume(cost int) {
	t.value = t.clamp(t.value - float64(cost))
}

// Reset sets the value directly, bypassing regeneration.
func (t *Tracker) Reset(v float64) {
	t.value = t.clamp(v)
}

// SetCapacity changes the upper bound. The current value is left as is and
// is clamped by the next mutation.
func (t *Tracker) SetCapacity(max int) {
	m := float64(max)
	if m < t.min {
		m = t.min
	}
	t.max = m
}

// SetRegenPeriod changes the seconds needed to regenerate one elixir.
// Non-positive periods are ignored.
func (t *Tracker) SetRegenPeriod(period float64) {
	if period <= 0 {
		return
	}
	t.regenPeriod = period
}

func (t *Tracker) Value() float64       { return t.value }
func (t *Tracker) Min() int             { return int(t.min) }
func (t *Tracker) Max() int             { return int(t.max) }
func (t *Tracker) RegenPeriod() float64 { return t.regenPeriod }

// PerTick returns the increment applied by one Tick.
func (t *Tracker) PerTick() float64 {
	return 1.0 / t.regenPeriod
}

func (t *Tracker) clamp(n float64) float64 {
	return Clamp(n, t.min, t.max)
}

// Clamp constrains n into [min, max].
func Clamp(n, min, max float64) float64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
