package field

import (
	"log/slog"
	"math/rand"
	"time"
)

// TickStats summarizes one simulator step for observers.
type TickStats struct {
	Bounces int
	Links   int
	Dots    int

	Advance time.Duration // integrate + bounce + shimmer
	Frame   time.Duration // snapshot + pair scan
	Draw    time.Duration // surface rendering
}

// Observer receives per-tick measurements. The telemetry collector
// implements it; a nil observer costs nothing.
type Observer interface {
	Tick(TickStats)
}

// Simulator binds a field to a named drawing surface and a tick loop.
//
// Construction with an unregistered surface name yields an inert simulator:
// no particles, no loop, and every method a safe no-op. The backdrop is
// decorative, so a missing surface must not take the host down.
//
// Not safe for concurrent use. All methods, and the ticker driving step,
// belong to a single goroutine.
type Simulator struct {
	field    *Field
	surface  Surface
	ticker   Ticker
	observer Observer

	frame Frame
	ticks int64
}

// NewSimulator resolves the surface by name, measures it, seeds particles
// by the viewport-width ladder, and builds an initial frame. The loop is
// started separately with Start.
func NewSimulator(name string, reg *Registry, rng *rand.Rand) *Simulator {
	s := &Simulator{}

	surface, ok := reg.Lookup(name)
	if !ok {
		slog.Debug("surface not registered, simulator stays inert", "surface", name)
		return s
	}

	w, h := surface.Measure()
	surface.SetSize(w, h)

	count := CountForWidth(surface.ViewportWidth())
	s.field = NewField(w, h, rng)
	s.field.Seed(count)
	s.surface = surface
	s.frame = s.field.BuildFrame()

	slog.Debug("simulator seeded",
		"surface", name,
		"width", w,
		"height", h,
		"particles", count,
	)
	return s
}

// SetObserver installs the per-tick observer. Pass nil to detach.
func (s *Simulator) SetObserver(o Observer) {
	s.observer = o
}

// Start begins the frame loop on the given ticker. No-op on an inert or
// already running simulator.
func (s *Simulator) Start(t Ticker) {
	if s.field == nil || s.ticker != nil {
		return
	}
	s.ticker = t
	t.Start(s.step)
	slog.Debug("simulator started")
}

// Stop cancels the pending tick, if any. Idempotent: safe on an inert,
// stopped, or never started simulator, and safe to call twice.
func (s *Simulator) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	slog.Debug("simulator stopped", "ticks", s.ticks)
}

// Running reports whether a ticker is active.
func (s *Simulator) Running() bool {
	return s.ticker != nil
}

// step runs one tick: advance, snapshot, render.
func (s *Simulator) step() {
	start := time.Now()
	bounces := s.field.Advance(start)
	advanced := time.Now()

	s.frame = s.field.BuildFrame()
	built := time.Now()

	Render(s.surface, s.frame)
	done := time.Now()

	s.ticks++
	if s.observer != nil {
		s.observer.Tick(TickStats{
			Bounces: bounces,
			Links:   len(s.frame.Links),
			Dots:    len(s.frame.Dots),
			Advance: advanced.Sub(start),
			Frame:   built.Sub(advanced),
			Draw:    done.Sub(built),
		})
	}
}

// DrawCurrent redraws the last built frame without advancing. The host uses
// it to keep a stopped backdrop on screen.
func (s *Simulator) DrawCurrent() {
	if s.surface == nil {
		return
	}
	Render(s.surface, s.frame)
}

// HandleResize re-measures the container and resizes the surface and field
// bounds. Particles are not reseeded and the count ladder is not
// re-evaluated; out-of-bounds positions resolve on their next bounce.
func (s *Simulator) HandleResize() {
	if s.field == nil {
		return
	}
	w, h := s.surface.Measure()
	s.surface.SetSize(w, h)
	s.field.Resize(w, h)
	slog.Debug("simulator resized", "width", w, "height", h)
}

// Reset reseeds the particles wholesale at the current count and bounds.
func (s *Simulator) Reset() {
	if s.field == nil {
		return
	}
	s.field.Reset()
	s.frame = s.field.BuildFrame()
	slog.Debug("simulator reset", "particles", s.field.Count())
}

// Frame returns the last built frame.
func (s *Simulator) Frame() Frame {
	return s.frame
}

// Ticks returns the number of completed steps.
func (s *Simulator) Ticks() int64 {
	return s.ticks
}

// Count returns the particle count, zero when inert.
func (s *Simulator) Count() int {
	if s.field == nil {
		return 0
	}
	return s.field.Count()
}

// Particle returns the particle at the given index, false when inert or out
// of range.
func (s *Simulator) Particle(index int) (ParticleInfo, bool) {
	if s.field == nil {
		return ParticleInfo{}, false
	}
	return s.field.Particle(index)
}

// Size returns the current field bounds, zero when inert.
func (s *Simulator) Size() (w, h float32) {
	if s.field == nil {
		return 0, 0
	}
	return s.field.Size()
}
