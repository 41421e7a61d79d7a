package elixir

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker delivers fn on a fixed cadence until stopped. It owns one
// clockwork.Ticker and one delivery goroutine.
type Ticker struct {
	ticker   clockwork.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
}

// StartTicker acquires a ticker on clock and calls fn for every tick.
// fn runs on the ticker goroutine.
func StartTicker(clock clockwork.Clock, interval time.Duration, fn func(time.Time)) *Ticker {
	t := &Ticker{
		ticker: clock.NewTicker(interval),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go t.run(fn)
	return t
}

func (t *Ticker) run(fn func(time.Time)) {
	defer close(t.exited)
	for {
		select {
		case <-t.done:
			return
		case at := <-t.ticker.Chan():
			// Stop may race with a pending tick; done wins.
			select {
			case <-t.done:
				return
			default:
			}
			fn(at)
		}
	}
}

// Stop releases the ticker and blocks until the delivery goroutine exits.
// No fn call starts after Stop returns. Safe to call more than once.
// Stop must not be called from fn.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
	<-t.exited
}
