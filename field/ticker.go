package field

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticker drives a simulator's frame loop. Start begins invoking step at the
// ticker's cadence; Stop cancels any pending tick and is idempotent. In-flight
// ticks complete; no tick fires after Stop returns. A Ticker is single-use:
// Start after Stop is a no-op.
type Ticker interface {
	Start(step func())
	Stop()
}

// ManualTicker is a Ticker pumped explicitly by its owner: the windowed draw
// loop calls Tick once per rendered frame, and tests single-step with it.
type ManualTicker struct {
	step    func()
	stopped bool
}

// Start arms the ticker. Ticks fire nothing until Start is called.
func (t *ManualTicker) Start(step func()) {
	if t.stopped {
		return
	}
	t.step = step
}

// Stop disarms the ticker permanently.
func (t *ManualTicker) Stop() {
	t.stopped = true
	t.step = nil
}

// Tick fires one step if the ticker is armed.
func (t *ManualTicker) Tick() {
	if t.step != nil {
		t.step()
	}
}

// Advance fires n consecutive steps.
func (t *ManualTicker) Advance(n int) {
	for i := 0; i < n; i++ {
		t.Tick()
	}
}

// IntervalTicker fires steps at a fixed wall-clock interval from its own
// goroutine. Stop waits for the loop to exit, so state touched by the step
// function is safe to read after Stop returns.
type IntervalTicker struct {
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	stopped  atomic.Bool
	wg       sync.WaitGroup
}

// NewIntervalTicker creates a ticker with the given period.
func NewIntervalTicker(interval time.Duration) *IntervalTicker {
	return &IntervalTicker{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start launches the tick loop. Calling Start twice, or after Stop, does
// nothing.
func (t *IntervalTicker) Start(step func()) {
	if t.stopped.Load() {
		return
	}
	if !t.running.CompareAndSwap(false, true) {
		return
	}
	t.wg.Add(1)
	go t.loop(step)
}

func (t *IntervalTicker) loop(step func()) {
	defer t.wg.Done()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			step()
		}
	}
}

// Stop halts the loop and waits for it to exit. Safe to call repeatedly and
// before Start.
func (t *IntervalTicker) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		if t.running.CompareAndSwap(true, false) {
			close(t.stop)
			t.wg.Wait()
		}
	})
}
