// Package scene wires the particle field into the window: lifecycle, focus
// policy, input, panels, and telemetry fan-out.
package scene

import (
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
	"github.com/Blooh123/JasminRojo/field"
	"github.com/Blooh123/JasminRojo/render"
	"github.com/Blooh123/JasminRojo/telemetry"
	"github.com/Blooh123/JasminRojo/ui"
)

// BackdropSurface is the registry name the app draws the field onto.
const BackdropSurface = "backdrop"

// App owns the window-side state: the simulator handle, the panels, and the
// telemetry plumbing.
type App struct {
	registry *field.Registry
	canvas   *render.CanvasSurface
	rng      *rand.Rand

	sim  *field.Simulator
	pump *field.ManualTicker

	hud     *ui.HUD
	perfUI  *ui.PerfPanel
	tuning  *ui.TuningPanel
	probeUI *ui.ProbePanel

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	out       *telemetry.OutputManager

	showHUD  bool
	showPerf bool

	probe probeSelection

	lastStats field.TickStats
	focused   bool
}

// NewApp builds the scene and starts the first simulator.
func NewApp(rng *rand.Rand) (*App, error) {
	cfg := config.Cfg()

	canvas := render.NewCanvasSurface()
	registry := field.NewRegistry()
	registry.Register(BackdropSurface, canvas)

	a := &App{
		registry: registry,
		canvas:   canvas,
		rng:      rng,
		hud:      ui.NewHUD(),
		perfUI:   ui.NewPerfPanel(10, 110),
		tuning:   ui.NewTuningPanel(260),
		probeUI:  ui.NewProbePanel(220),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		showHUD:  true,
		focused:  true,
	}

	if cfg.Telemetry.Enabled {
		out, err := telemetry.NewOutputManager(cfg.Telemetry.OutDir)
		if err != nil {
			return nil, fmt.Errorf("telemetry output: %w", err)
		}
		if err := out.WriteConfig(cfg); err != nil {
			slog.Warn("config snapshot failed", "error", err)
		}
		a.out = out

		flow := telemetry.NewFlowDetector(cfg.Telemetry.FlowHistory)
		a.collector = telemetry.NewCollector(cfg.Telemetry.WindowTicks, a, out, flow, a.perf)
	}

	a.start()
	return a, nil
}

// Tick implements field.Observer, fanning per-tick stats out to the
// collectors.
func (a *App) Tick(stats field.TickStats) {
	a.lastStats = stats
	a.perf.RecordTick(stats)
	a.collector.Tick(stats)
}

// Frame implements telemetry.FrameSource against whichever simulator is
// currently live.
func (a *App) Frame() field.Frame {
	if a.sim == nil {
		return field.Frame{}
	}
	return a.sim.Frame()
}

// Update handles focus transitions and input for one frame.
func (a *App) Update() {
	a.handleFocus()
	a.handleInput()
}

// Draw renders one frame: the field (live step, or static redraw while
// stopped) plus the UI layers.
func (a *App) Draw() {
	a.perf.RecordFrame()

	rl.BeginDrawing()

	if a.sim.Running() {
		a.pump.Tick()
	} else {
		a.sim.DrawCurrent()
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if a.showHUD {
		a.hud.Draw(ui.HUDData{
			Title:        config.Cfg().Window.Title,
			Dots:         a.sim.Count(),
			Links:        a.lastStats.Links,
			Tick:         int(a.sim.Ticks()),
			FPS:          rl.GetFPS(),
			Running:      a.sim.Running(),
			ScreenWidth:  screenW,
			ScreenHeight: screenH,
		})
		a.hud.DrawControls(screenW, screenH,
			"[Space] run/stop  [R] reset  [T] tuning  [H] hud  [P] perf  [Click] probe  [Esc] deselect  [F11] fullscreen  [F12] screenshot")
	}

	if a.showPerf {
		a.perfUI.Draw(a.perf.Stats())
	}

	a.tuning.Draw(screenW)

	if a.probe.active {
		a.drawProbe(screenH)
	}

	rl.EndDrawing()
}

// start constructs a fresh simulator and runs it on a new frame pump.
func (a *App) start() {
	a.sim = field.NewSimulator(BackdropSurface, a.registry, a.rng)
	a.sim.SetObserver(a)
	a.pump = &field.ManualTicker{}
	a.sim.Start(a.pump)
	a.probe = probeSelection{}

	w, h := a.sim.Size()
	slog.Info("field started", "dots", a.sim.Count(), "width", w, "height", h)
}

// toggleRun stops a running field, or constructs and starts a fresh one.
func (a *App) toggleRun() {
	if a.sim.Running() {
		a.sim.Stop()
		return
	}
	a.start()
}

// handleFocus mirrors the host page policy: stop on blur, construct fresh on
// focus unless a simulator is already running.
func (a *App) handleFocus() {
	focused := rl.IsWindowFocused()
	if focused == a.focused {
		return
	}
	a.focused = focused

	if !focused {
		slog.Debug("field stopped on blur", "ticks", a.sim.Ticks())
		a.sim.Stop()
		return
	}

	if !a.sim.Running() {
		a.start()
	}
}

// Close stops the field and flushes telemetry.
func (a *App) Close() {
	a.sim.Stop()
	a.collector.Flush()

	history := a.collector.History()
	if a.out != nil && config.Cfg().Telemetry.Chart && len(history) >= 2 {
		chartPath := filepath.Join(a.out.Dir(), "activity.png")
		if err := telemetry.RenderTimeline(history, chartPath); err != nil {
			slog.Warn("timeline render failed", "error", err)
		} else {
			slog.Info("timeline rendered", "file", chartPath)
		}
	}

	if err := a.out.Close(); err != nil {
		slog.Warn("telemetry close failed", "error", err)
	}
}
