package elixir

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitTick(t *testing.T, ch <-chan time.Time) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestTicker_DeliversOnCadence(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	ticks := make(chan time.Time, 4)
	tk := StartTicker(clock, time.Second, func(at time.Time) { ticks <- at })
	defer tk.Stop()

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		waitTick(t, ticks)
	}
}

func TestTicker_NoTickAfterStop(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	var count atomic.Int32
	tk := StartTicker(clock, time.Second, func(time.Time) { count.Add(1) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker never registered: %v", err)
	}

	tk.Stop()
	before := count.Load()

	clock.Advance(5 * time.Second)
	time.Sleep(20 * time.Millisecond)

	if got := count.Load(); got != before {
		t.Fatalf("ticks after stop = %d, want %d", got, before)
	}
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	tk := StartTicker(clockwork.NewFakeClock(), time.Second, func(time.Time) {})
	tk.Stop()
	tk.Stop()

	var nilTicker *Ticker
	nilTicker.Stop()
}
