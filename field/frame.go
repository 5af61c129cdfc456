package field

import (
	"math"

	"github.com/Blooh123/JasminRojo/config"
)

// Dot is one particle ready to draw.
type Dot struct {
	X, Y   float32
	Radius float32
	Alpha  float32
}

// Link is a connection line between one close pair.
type Link struct {
	X1, Y1 float32
	X2, Y2 float32
	Alpha  float32
}

// Frame is a drawable snapshot of the field. The simulator keeps its last
// frame so a stopped backdrop can be redrawn statically and the probe can
// inspect it without touching the world.
type Frame struct {
	Dots  []Dot
	Links []Link
}

// BuildFrame snapshots the particles and computes the proximity links. Every
// unordered pair closer than the link range gets a line whose alpha falls
// off linearly, (1 - d/range) * scale. The pair scan is O(n^2); at the
// maximum count of 60 that is 1770 pairs.
func (f *Field) BuildFrame() Frame {
	cfg := config.Cfg()
	reach := cfg.Derived.LinkRange32
	scale := cfg.Derived.LinkAlphaScale32

	frame := Frame{Dots: make([]Dot, 0, f.count)}
	query := f.filter.Query()
	for query.Next() {
		pos, _, body, glow := query.Get()
		frame.Dots = append(frame.Dots, Dot{
			X:      pos.X,
			Y:      pos.Y,
			Radius: body.Radius,
			Alpha:  glow.Alpha,
		})
	}

	reachSq := reach * reach
	for i := 0; i < len(frame.Dots); i++ {
		for j := i + 1; j < len(frame.Dots); j++ {
			a, b := &frame.Dots[i], &frame.Dots[j]
			dd := distanceSq(a.X, a.Y, b.X, b.Y)
			if dd >= reachSq {
				continue
			}
			d := float32(math.Sqrt(float64(dd)))
			frame.Links = append(frame.Links, Link{
				X1: a.X, Y1: a.Y,
				X2: b.X, Y2: b.Y,
				Alpha: LinkAlpha(d, reach, scale),
			})
		}
	}
	return frame
}

// Render draws a frame onto a surface: clear, links underneath, dots on top.
func Render(s Surface, frame Frame) {
	cfg := config.Cfg()
	width := cfg.Derived.LinkWidth32

	s.Clear()
	for _, l := range frame.Links {
		s.StrokeLine(l.X1, l.Y1, l.X2, l.Y2, width, l.Alpha)
	}
	for _, d := range frame.Dots {
		s.FillCircle(d.X, d.Y, d.Radius, d.Alpha)
	}
}

// LinkAlpha returns the line alpha for a pair distance: a linear falloff
// from scale at zero to nothing at the link range, zero at or beyond it.
func LinkAlpha(d, reach, scale float32) float32 {
	if d >= reach || reach <= 0 {
		return 0
	}
	return (1 - d/reach) * scale
}
