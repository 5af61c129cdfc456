package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/telemetry"
)

// HUDData holds the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Dots         int
	Links        int
	Tick         int
	FPS          int32
	Running      bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Title
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	// Field counts
	rl.DrawText(
		fmt.Sprintf("Dots: %d | Links: %d", data.Dots, data.Links),
		10, 35, 16, rl.LightGray,
	)

	// Simulation info
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	// Status
	statusText := "Running"
	if !data.Running {
		statusText = "STOPPED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the step timing readout.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Step Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("Avg: %s  Max: %s",
			stats.AvgTickDuration.Round(time.Microsecond),
			stats.MaxTickDuration.Round(time.Microsecond)),
		x, y, 14, rl.Yellow,
	)
	y += 16

	phases := []struct {
		name string
		avg  time.Duration
		pct  float64
	}{
		{"advance", stats.AdvanceAvg, stats.AdvancePct},
		{"frame", stats.FrameAvg, stats.FramePct},
		{"draw", stats.DrawAvg, stats.DrawPct},
	}

	for _, ph := range phases {
		color := rl.LightGray
		if ph.pct > 50 {
			color = rl.Red
		} else if ph.pct > 30 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-8s %6s %5.1f%%", ph.name, ph.avg.Round(time.Microsecond), ph.pct),
			x, y, 12, color,
		)
		y += 14
	}
}
