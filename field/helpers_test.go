package field

import (
	"github.com/Blooh123/JasminRojo/components"
)

// place adds one particle with explicit state, bypassing Seed.
func (f *Field) place(x, y, vx, vy, radius, base float32) {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: vx, Y: vy}
	body := components.Body{Radius: radius}
	glow := components.Glow{Base: base, Alpha: base}
	f.mapper.NewEntity(&pos, &vel, &body, &glow)
	f.count++
}

// particle is a flattened copy of one particle's components.
type particle struct {
	pos  components.Position
	vel  components.Velocity
	body components.Body
	glow components.Glow
}

// collect copies out all particles for assertions.
func collect(f *Field) []particle {
	var out []particle
	query := f.filter.Query()
	for query.Next() {
		pos, vel, body, glow := query.Get()
		out = append(out, particle{pos: *pos, vel: *vel, body: *body, glow: *glow})
	}
	return out
}

// surfaceOp records one draw call on the stub surface.
type surfaceOp struct {
	kind  string // "clear", "circle", "line"
	alpha float32
}

// stubSurface implements Surface for tests, recording draw calls and
// reporting a fixed container box and viewport width.
type stubSurface struct {
	w, h     float32
	viewport float32

	setW, setH float32
	ops        []surfaceOp
	clears     int
}

func newStubSurface(w, h, viewport float32) *stubSurface {
	return &stubSurface{w: w, h: h, viewport: viewport}
}

func (s *stubSurface) Measure() (float32, float32) { return s.w, s.h }

func (s *stubSurface) ViewportWidth() float32 { return s.viewport }

func (s *stubSurface) SetSize(w, h float32) { s.setW, s.setH = w, h }

func (s *stubSurface) Clear() {
	s.clears++
	s.ops = append(s.ops, surfaceOp{kind: "clear"})
}

func (s *stubSurface) FillCircle(x, y, radius, alpha float32) {
	s.ops = append(s.ops, surfaceOp{kind: "circle", alpha: alpha})
}

func (s *stubSurface) StrokeLine(x1, y1, x2, y2, width, alpha float32) {
	s.ops = append(s.ops, surfaceOp{kind: "line", alpha: alpha})
}
