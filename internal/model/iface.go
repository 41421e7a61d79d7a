package model

// SessionReader provides read-only access to the tracked session state.
type SessionReader interface {
	Snapshot() Snapshot
	Visible() []Card
	Filter() FilterState
	Updates() <-chan Snapshot
}

// SessionController routes user intents into the tracker and play history.
type SessionController interface {
	SessionReader

	Tap(card Card)
	SetCapacity(max int)
	SetRegenPeriod(period float64)
	Reset()
	ResetAll()

	SetSearch(text string)
	SetCostFilter(cost int)
	ToggleCostFilter(cost int)
	ClearFilter()
}
