package field

import (
	"math/rand"
	"testing"

	"github.com/Blooh123/JasminRojo/config"
)

func TestInertSimulatorOnMissingSurface(t *testing.T) {
	config.MustInit("")

	sim := NewSimulator("nonexistent", NewRegistry(), nil)

	if sim.Running() {
		t.Error("inert simulator reports running")
	}
	if sim.Count() != 0 {
		t.Errorf("inert simulator has %d particles", sim.Count())
	}

	// None of these may panic or start anything.
	ticker := &ManualTicker{}
	sim.Start(ticker)
	if sim.Running() {
		t.Error("inert simulator started")
	}
	ticker.Tick()
	sim.HandleResize()
	sim.Reset()
	sim.DrawCurrent()
	sim.Stop()
	sim.Stop()
	if sim.Ticks() != 0 {
		t.Errorf("inert simulator ticked %d times", sim.Ticks())
	}
}

func TestConstructionSeedsByViewport(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(300, 200, 300)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(2)))

	// Viewport width 300 lands on the narrow rung of the ladder.
	if sim.Count() != 20 {
		t.Fatalf("expected 20 particles for viewport 300, got %d", sim.Count())
	}
	if surface.setW != 300 || surface.setH != 200 {
		t.Errorf("surface sized to %gx%g, want 300x200", surface.setW, surface.setH)
	}

	frame := sim.Frame()
	if len(frame.Dots) != 20 {
		t.Fatalf("initial frame has %d dots", len(frame.Dots))
	}
	for i, d := range frame.Dots {
		if d.X < 0 || d.X > 300 || d.Y < 0 || d.Y > 200 {
			t.Errorf("dot %d outside bounds at (%f, %f)", i, d.X, d.Y)
		}
		if d.Radius < 0.5 || d.Radius > 2.0 {
			t.Errorf("dot %d radius %f outside [0.5, 2.0]", i, d.Radius)
		}
	}
}

func TestStartTickStop(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(640, 480, 640)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(4)))
	ticker := &ManualTicker{}

	sim.Start(ticker)
	if !sim.Running() {
		t.Fatal("simulator not running after Start")
	}

	ticker.Advance(3)
	if sim.Ticks() != 3 {
		t.Errorf("expected 3 ticks, got %d", sim.Ticks())
	}
	if surface.clears != 3 {
		t.Errorf("expected 3 surface clears, got %d", surface.clears)
	}

	// A second Start while running must not swap the ticker.
	other := &ManualTicker{}
	sim.Start(other)
	other.Tick()
	if sim.Ticks() != 3 {
		t.Errorf("second Start attached a new ticker, ticks %d", sim.Ticks())
	}

	sim.Stop()
	if sim.Running() {
		t.Error("simulator still running after Stop")
	}
	ticker.Tick()
	if sim.Ticks() != 3 {
		t.Errorf("tick fired after Stop, ticks %d", sim.Ticks())
	}

	// Idempotent teardown.
	sim.Stop()
	sim.Stop()
	if sim.Running() {
		t.Error("simulator running after repeated Stop")
	}
}

func TestResizeKeepsStateAndCount(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(400, 300, 400)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(6)))
	before := collect(sim.field)

	surface.w, surface.h = 200, 150
	sim.HandleResize()

	if w, h := sim.Size(); w != 200 || h != 150 {
		t.Errorf("expected bounds 200x150, got %gx%g", w, h)
	}
	if surface.setW != 200 || surface.setH != 150 {
		t.Errorf("surface resized to %gx%g, want 200x150", surface.setW, surface.setH)
	}
	if sim.Count() != 20 {
		t.Errorf("resize re-evaluated the ladder, count %d", sim.Count())
	}

	after := collect(sim.field)
	for i := range after {
		if after[i].pos != before[i].pos {
			t.Errorf("resize moved particle %d", i)
		}
	}
}

func TestResetBuildsFreshFrame(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(640, 480, 640)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(8)))
	before := sim.Frame()

	sim.Reset()
	after := sim.Frame()

	if len(after.Dots) != len(before.Dots) {
		t.Fatalf("reset changed dot count: %d -> %d", len(before.Dots), len(after.Dots))
	}
	moved := 0
	for i := range after.Dots {
		if after.Dots[i] != before.Dots[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Error("reset left every dot in place")
	}
}

type recordingObserver struct {
	stats []TickStats
}

func (r *recordingObserver) Tick(s TickStats) {
	r.stats = append(r.stats, s)
}

func TestObserverReceivesTickStats(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(640, 480, 640)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(10)))
	obs := &recordingObserver{}
	sim.SetObserver(obs)

	ticker := &ManualTicker{}
	sim.Start(ticker)
	ticker.Advance(2)

	if len(obs.stats) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs.stats))
	}
	for i, s := range obs.stats {
		if s.Dots != sim.Count() {
			t.Errorf("observation %d: %d dots, want %d", i, s.Dots, sim.Count())
		}
	}
}

func TestDrawCurrentWhileStopped(t *testing.T) {
	config.MustInit("")

	reg := NewRegistry()
	surface := newStubSurface(640, 480, 640)
	reg.Register("backdrop", surface)

	sim := NewSimulator("backdrop", reg, rand.New(rand.NewSource(12)))
	ticker := &ManualTicker{}
	sim.Start(ticker)
	ticker.Tick()
	sim.Stop()

	clearsBefore := surface.clears
	sim.DrawCurrent()

	if surface.clears != clearsBefore+1 {
		t.Error("DrawCurrent did not redraw the surface")
	}
	if sim.Ticks() != 1 {
		t.Errorf("DrawCurrent advanced the simulation to %d ticks", sim.Ticks())
	}
}
