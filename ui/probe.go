package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProbeData holds the live state of the selected dot.
type ProbeData struct {
	Index     int
	X, Y      float32
	VX, VY    float32
	Radius    float32
	BaseAlpha float32
	Alpha     float32
}

// ProbePanel renders details for the dot selected with the mouse.
type ProbePanel struct {
	renderer *Renderer
	width    int32
}

// NewProbePanel creates a probe panel.
func NewProbePanel(width int32) *ProbePanel {
	return &ProbePanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Draw renders a marker ring around the selected dot and a detail panel
// anchored to the bottom-left corner.
func (p *ProbePanel) Draw(data ProbeData, screenHeight int32) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	rl.DrawCircleLines(int32(data.X), int32(data.Y), data.Radius+6, rl.Yellow)

	panelHeight := lineHeight*6 + padding*2 + 4
	x := padding
	y := screenHeight - panelHeight - 40

	r.DrawPanel(x, y, p.width, panelHeight)

	inX := x + padding
	inY := y + padding

	inY = r.DrawSectionHeader(inX, inY, fmt.Sprintf("Dot #%d", data.Index))
	inY = r.DrawLabelValue(inX, inY, "Pos", fmt.Sprintf("%.1f, %.1f", data.X, data.Y))
	inY = r.DrawLabelValue(inX, inY, "Vel", fmt.Sprintf("%+.3f, %+.3f", data.VX, data.VY))
	inY = r.DrawLabelValue(inX, inY, "Radius", fmt.Sprintf("%.2f", data.Radius))
	inY = r.DrawLabelValue(inX, inY, "Base", fmt.Sprintf("%.3f", data.BaseAlpha))
	r.DrawBar(inX, inY, "Alpha", data.Alpha, p.width-padding*2)
}
