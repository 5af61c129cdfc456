package field

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualTickerLifecycle(t *testing.T) {
	ticker := &ManualTicker{}
	fired := 0

	// Unarmed ticks do nothing.
	ticker.Tick()
	if fired != 0 {
		t.Fatal("tick fired before Start")
	}

	ticker.Start(func() { fired++ })
	ticker.Advance(3)
	if fired != 3 {
		t.Errorf("expected 3 steps, got %d", fired)
	}

	ticker.Stop()
	ticker.Tick()
	if fired != 3 {
		t.Errorf("step fired after Stop, count %d", fired)
	}

	// Single-use: rearming a stopped ticker is a no-op.
	ticker.Start(func() { fired++ })
	ticker.Tick()
	if fired != 3 {
		t.Errorf("stopped ticker rearmed, count %d", fired)
	}
}

func TestIntervalTickerStops(t *testing.T) {
	ticker := NewIntervalTicker(2 * time.Millisecond)
	var fired atomic.Int64

	ticker.Start(func() { fired.Add(1) })
	time.Sleep(50 * time.Millisecond)
	ticker.Stop()

	count := fired.Load()
	if count == 0 {
		t.Fatal("interval ticker never fired")
	}

	// No step may fire after Stop returns.
	time.Sleep(20 * time.Millisecond)
	if fired.Load() != count {
		t.Errorf("step fired after Stop: %d -> %d", count, fired.Load())
	}

	// Idempotent, and single-use.
	ticker.Stop()
	ticker.Start(func() { fired.Add(1) })
	time.Sleep(20 * time.Millisecond)
	if fired.Load() != count {
		t.Errorf("stopped interval ticker restarted: %d -> %d", count, fired.Load())
	}
}

func TestIntervalTickerStopBeforeStart(t *testing.T) {
	ticker := NewIntervalTicker(time.Millisecond)
	ticker.Stop()

	var fired atomic.Int64
	ticker.Start(func() { fired.Add(1) })
	time.Sleep(10 * time.Millisecond)

	if fired.Load() != 0 {
		t.Errorf("ticker started after Stop, fired %d times", fired.Load())
	}
}
