package scene

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyF12) {
		file := fmt.Sprintf("field_%d.png", time.Now().Unix())
		rl.TakeScreenshot(file)
		slog.Info("screenshot saved", "file", file)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.toggleRun()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.sim.Reset()
		a.probe = probeSelection{}
	}

	if rl.IsKeyPressed(rl.KeyT) {
		a.tuning.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		a.showHUD = !a.showHUD
	}

	if rl.IsKeyPressed(rl.KeyP) {
		a.showPerf = !a.showPerf
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.probe = probeSelection{}
	}

	// Slider drags must not double as probe clicks
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !a.tuning.IsVisible() {
		mouse := rl.GetMousePosition()
		a.probeSelect(mouse.X, mouse.Y)
	}
}

// handleResize propagates window size changes. The field keeps its particles
// and count; only the bounds move.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}

	a.sim.HandleResize()

	w, h := a.sim.Size()
	slog.Debug("field resized", "width", w, "height", h)
}
