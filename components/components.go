// Package components defines ECS components for the particle field.
package components

// Position is a particle's location on the drawing surface, in pixels.
// Stays inside [0, W] x [0, H] after every update step.
type Position struct {
	X, Y float32
}

// Velocity is a particle's drift per tick. Each axis is fixed at seed
// time and only ever changes sign, on a wall bounce.
type Velocity struct {
	X, Y float32
}

// Body holds the drawn disc radius, fixed at seed time.
type Body struct {
	Radius float32
}

// Glow holds the particle's fill opacity. Base is fixed at seed time;
// Alpha is recomputed every tick as Base plus a bounded sine term and
// never accumulates drift.
type Glow struct {
	Base  float32
	Alpha float32
}
