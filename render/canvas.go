// Package render provides the raylib drawing backends for the field.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Blooh123/JasminRojo/config"
)

// CanvasSurface draws the field directly into the raylib window. The window
// is its own container, so Measure and ViewportWidth both track the live
// window size. Draw calls are only valid inside a BeginDrawing block on the
// main thread.
type CanvasSurface struct {
	w, h float32

	background rl.Color
	dot        rl.Color
	link       rl.Color
}

// NewCanvasSurface builds a window surface with the configured theme.
func NewCanvasSurface() *CanvasSurface {
	theme := config.Cfg().Derived.Theme
	return &CanvasSurface{
		background: toRL(theme.Background),
		dot:        toRL(theme.Dot),
		link:       toRL(theme.Link),
	}
}

func toRL(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}

func (c *CanvasSurface) Measure() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (c *CanvasSurface) ViewportWidth() float32 {
	return float32(rl.GetScreenWidth())
}

// SetSize records the adopted size. The window owns its pixel store, so
// there is nothing to reallocate.
func (c *CanvasSurface) SetSize(w, h float32) {
	c.w, c.h = w, h
}

func (c *CanvasSurface) Clear() {
	rl.ClearBackground(c.background)
}

func (c *CanvasSurface) FillCircle(x, y, radius, alpha float32) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, rl.Fade(c.dot, alpha))
}

func (c *CanvasSurface) StrokeLine(x1, y1, x2, y2, width, alpha float32) {
	rl.DrawLineEx(
		rl.Vector2{X: x1, Y: y1},
		rl.Vector2{X: x2, Y: y2},
		width,
		rl.Fade(c.link, alpha),
	)
}
