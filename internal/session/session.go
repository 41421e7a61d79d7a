// Package session owns the state of one mounted tracker: the elixir
// estimate, the play history, the card filter and the regeneration ticker.
//
// Every mutation, whether it comes from the ticker or from a user intent, is
// serialized by one mutex, so the tracker sees a single ordered stream of
// changes. At most one ticker is live per session at any time.
package session

import (
	"sync"
	"time"

	"github.com/tinytelemetry/clash-analyzer/internal/catalog"
	"github.com/tinytelemetry/clash-analyzer/internal/elixir"
	"github.com/tinytelemetry/clash-analyzer/internal/history"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds session parameters. Zero values fall back to the defaults
// in internal/model.
type Config struct {
	StartElixir  float64
	MaxElixir    int
	RegenPeriod  float64
	TickInterval time.Duration
	HistoryLimit int
	Clock        clockwork.Clock
}

func (c Config) withDefaults() Config {
	if c.StartElixir == 0 {
		c.StartElixir = model.DefaultStartElixir
	}
	if c.MaxElixir <= 0 {
		c.MaxElixir = model.DefaultMaxElixir
	}
	if c.RegenPeriod <= 0 {
		c.RegenPeriod = model.DefaultRegenPeriod
	}
	if c.TickInterval <= 0 {
		c.TickInterval = model.DefaultTickInterval
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = model.DefaultHistoryLimit
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return c
}

// Session is the single state structure shared with the presentation layer.
type Session struct {
	cfg    Config
	id     string
	logger zerolog.Logger

	mu      sync.Mutex
	tracker *elixir.Tracker
	plays   *history.History
	filter  model.FilterState
	closed  bool
	updates chan model.Snapshot

	// tickerMu guards the ticker handle. It is never held together with mu
	// while waiting for the old ticker goroutine to exit.
	tickerMu      sync.Mutex
	ticker        *elixir.Ticker
	tickerStarted bool
	liveTickers   int // for tests: tickers acquired and not yet released
}

// New creates a session. The ticker does not run until Start.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	id := uuid.New().String()[:8]
	return &Session{
		cfg:     cfg,
		id:      id,
		logger:  log.With().Str("session", id).Logger(),
		tracker: elixir.NewTracker(cfg.StartElixir, cfg.MaxElixir, cfg.RegenPeriod),
		plays:   history.New(cfg.HistoryLimit),
		updates: make(chan model.Snapshot, 1),
	}
}

// ID returns the short session identifier used in log lines.
func (s *Session) ID() string { return s.id }

// Start begins regeneration. Calling Start on a running session is a no-op.
func (s *Session) Start() {
	s.tickerMu.Lock()
	defer s.tickerMu.Unlock()
	if s.tickerStarted {
		return
	}
	s.tickerStarted = true
	s.restartTickerLocked()
	s.logger.Info().
		Float64("elixir", s.Snapshot().Elixir).
		Dur("tick_interval", s.cfg.TickInterval).
		Msg("session started")
}

// Close stops the ticker and closes the update channel. No tick is applied
// after Close returns. Intents after Close still mutate state but publish
// nothing.
func (s *Session) Close() {
	s.tickerMu.Lock()
	s.releaseTickerLocked()
	s.tickerStarted = false
	s.tickerMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
	s.logger.Info().Int("plays", s.plays.Len()).Msg("session closed")
}

// restartTickerLocked releases the current ticker before acquiring a new
// one. Caller holds tickerMu and must not hold mu.
func (s *Session) restartTickerLocked() {
	s.releaseTickerLocked()
	s.ticker = elixir.StartTicker(s.cfg.Clock, s.cfg.TickInterval, s.onTick)
	s.liveTickers++
}

func (s *Session) releaseTickerLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	s.liveTickers--
}

// restartTicker is called after a configuration change. It only restarts a
// ticker that is running.
func (s *Session) restartTicker() {
	s.tickerMu.Lock()
	defer s.tickerMu.Unlock()
	if !s.tickerStarted {
		return
	}
	s.restartTickerLocked()
	s.logger.Debug().Msg("regeneration ticker restarted")
}

func (s *Session) onTick(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Tick()
	s.publishLocked(at)
}

// Tap records that the opponent played card: its cost is consumed and the
// card is prepended to the history, under one lock.
func (s *Session) Tap(card model.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Consume(card.Cost)
	s.plays.Record(card)
	s.logger.Debug().
		Str("card", card.Name).
		Int("cost", card.Cost).
		Float64("elixir", s.tracker.Value()).
		Msg("card tapped")
	s.publishLocked(s.cfg.Clock.Now())
}

// SetCapacity changes the elixir cap and restarts the ticker.
func (s *Session) SetCapacity(max int) {
	s.mu.Lock()
	s.tracker.SetCapacity(max)
	s.publishLocked(s.cfg.Clock.Now())
	s.mu.Unlock()

	s.logger.Debug().Int("max", max).Msg("capacity changed")
	s.restartTicker()
}

// SetRegenPeriod changes the regeneration period and restarts the ticker.
func (s *Session) SetRegenPeriod(period float64) {
	s.mu.Lock()
	s.tracker.SetRegenPeriod(period)
	s.publishLocked(s.cfg.Clock.Now())
	s.mu.Unlock()

	s.logger.Debug().Float64("regen_period", period).Msg("regeneration period changed")
	s.restartTicker()
}

// Reset re-synchronizes the estimate to the default starting elixir.
// History and filter are untouched.
func (s *Session) Reset() {
	s.ResetTo(model.DefaultStartElixir)
}

// ResetTo sets the estimate to v, clamped.
func (s *Session) ResetTo(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Reset(v)
	s.publishLocked(s.cfg.Clock.Now())
}

// ResetAll restores the configured starting elixir and clears the history.
func (s *Session) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Reset(s.cfg.StartElixir)
	s.plays.Clear()
	s.logger.Info().Msg("session reset")
	s.publishLocked(s.cfg.Clock.Now())
}

// SetSearch sets the card name search text.
func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = text
}

// SetCostFilter restricts visible cards to one cost; NoCostFilter clears it.
func (s *Session) SetCostFilter(cost int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Cost = normalizeCost(cost)
}

// ToggleCostFilter selects cost, or clears the cost filter when cost is
// already selected.
func (s *Session) ToggleCostFilter(cost int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cost = normalizeCost(cost)
	if s.filter.Cost == cost {
		cost = model.NoCostFilter
	}
	s.filter.Cost = cost
}

func normalizeCost(cost int) int {
	if cost < model.MinCost || cost > model.MaxCost {
		return model.NoCostFilter
	}
	return cost
}

// ClearFilter removes both filter predicates.
func (s *Session) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = model.FilterState{}
}

// Filter returns the current filter state.
func (s *Session) Filter() model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Visible returns the catalog narrowed by the current filter.
func (s *Session) Visible() []model.Card {
	return catalog.Filter(catalog.All(), s.Filter())
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(s.cfg.Clock.Now())
}

// Updates delivers a snapshot after each elixir or history change. The
// channel keeps only the latest snapshot and is closed by Close.
func (s *Session) Updates() <-chan model.Snapshot {
	return s.updates
}

func (s *Session) snapshotLocked(at time.Time) model.Snapshot {
	v := s.tracker.Value()
	return model.Snapshot{
		Elixir:      v,
		Display:     elixir.Format(v),
		Min:         s.tracker.Min(),
		Max:         s.tracker.Max(),
		RegenPeriod: s.tracker.RegenPeriod(),
		PerTick:     s.tracker.PerTick(),
		History:     s.plays.Entries(),
		HistoryCap:  s.plays.Limit(),
		Spent:       s.plays.TotalCost(),
		Filter:      s.filter,
		At:          at,
	}
}

// publishLocked replaces any unread snapshot with the current one.
func (s *Session) publishLocked(at time.Time) {
	if s.closed {
		return
	}
	snap := s.snapshotLocked(at)
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- snap:
	default:
	}
}

func (s *Session) activeTickers() int {
	s.tickerMu.Lock()
	defer s.tickerMu.Unlock()
	return s.liveTickers
}
