package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
)

// TuningPanel exposes the live field parameters as sliders. Slider changes
// write straight into the derived config, which the field reads every tick;
// speed only matters at seeding, so it takes effect on the next reset.
type TuningPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewTuningPanel creates a hidden tuning panel.
func NewTuningPanel(width int32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Toggle switches panel visibility.
func (t *TuningPanel) Toggle() bool {
	t.visible = !t.visible
	return t.visible
}

// IsVisible reports whether the panel is shown.
func (t *TuningPanel) IsVisible() bool {
	return t.visible
}

// Draw renders the sliders anchored to the top-right corner.
func (t *TuningPanel) Draw(screenWidth int32) {
	if !t.visible {
		return
	}

	d := &config.Cfg().Derived
	padding := t.renderer.Theme.Padding

	x := screenWidth - t.width - padding
	panelHeight := 4*46 + 30 + padding*2

	t.renderer.DrawPanel(x, padding, t.width, panelHeight)

	sx := float32(x + padding)
	sw := float32(t.width - padding*2 - 50)
	y := padding + 6

	rl.DrawText("Field Tuning", x+padding, y, 16, rl.White)
	y += 24

	d.LinkRange32 = t.slider(sx, &y, sw, "Link range", d.LinkRange32, 40, 200, "%.0f")
	d.LinkAlphaScale32 = t.slider(sx, &y, sw, "Link alpha", d.LinkAlphaScale32, 0.05, 0.5, "%.2f")
	d.ShimmerAmp32 = t.slider(sx, &y, sw, "Shimmer", d.ShimmerAmp32, 0, 0.3, "%.2f")
	d.SpeedScale32 = t.slider(sx, &y, sw, "Speed (next reset)", d.SpeedScale32, 0.05, 1.0, "%.2f")
}

func (t *TuningPanel) slider(x float32, y *int32, width float32, label string, value, minVal, maxVal float32, format string) float32 {
	r := t.renderer

	r.DrawLabel(int32(x), *y, label)
	*y += 16

	got := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(*y), Width: width, Height: 18},
		"", "",
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, got), int32(x+width+8), *y+2, r.Theme.FontSize, r.Theme.ValueColor)
	*y += 30

	return got
}
