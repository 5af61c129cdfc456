package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
	"github.com/Blooh123/JasminRojo/field"
	"github.com/Blooh123/JasminRojo/scene"
	"github.com/Blooh123/JasminRojo/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	ticks := flag.Int("ticks", 0, "Headless: fast-forward N ticks and exit (0 = run paced)")
	duration := flag.Duration("duration", 0, "Headless: paced run length (0 = until interrupted)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	// CLI output dir overrides config and implies telemetry
	if *outputDir != "" {
		cfg.Telemetry.OutDir = *outputDir
		cfg.Telemetry.Enabled = true
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	if *headless {
		runHeadless(rng, rngSeed, *ticks, *duration)
		return
	}
	runWindow(rng, rngSeed)
}

// logLevel maps the config string to a slog level, defaulting to info.
func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runWindow(rng *rand.Rand, seed int64) {
	cfg := config.Cfg()

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	// Esc deselects the probe instead of closing the window
	rl.SetExitKey(0)

	app, err := scene.NewApp(rng)
	if err != nil {
		slog.Error("failed to build scene", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	slog.Info("starting field",
		"seed", seed,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
	)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

// headlessObserver fans a tick out to the perf collector and the stats collector.
type headlessObserver struct {
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
}

func (o *headlessObserver) Tick(stats field.TickStats) {
	o.perf.RecordTick(stats)
	o.collector.Tick(stats)
}

// runHeadless drives the field without a window. A tick count fast-forwards
// on a manual pump; otherwise the field runs paced at the target FPS for the
// given duration, or until interrupted.
func runHeadless(rng *rand.Rand, seed int64, ticks int, duration time.Duration) {
	cfg := config.Cfg()

	surface := field.NewNullSurface(float32(cfg.Headless.Width), float32(cfg.Headless.Height))
	registry := field.NewRegistry()
	registry.Register(scene.BackdropSurface, surface)

	sim := field.NewSimulator(scene.BackdropSurface, registry, rng)
	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	var (
		out       *telemetry.OutputManager
		collector *telemetry.Collector
	)
	if cfg.Telemetry.Enabled {
		var err error
		out, err = telemetry.NewOutputManager(cfg.Telemetry.OutDir)
		if err != nil {
			slog.Error("failed to set up telemetry output", "error", err)
			os.Exit(1)
		}
		if err := out.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
		flow := telemetry.NewFlowDetector(cfg.Telemetry.FlowHistory)
		collector = telemetry.NewCollector(cfg.Telemetry.WindowTicks, sim, out, flow, perf)
	}
	sim.SetObserver(&headlessObserver{perf: perf, collector: collector})

	slog.Info("starting headless field",
		"seed", seed,
		"dots", sim.Count(),
		"ticks", ticks,
		"duration", duration.String(),
	)

	if ticks > 0 {
		pump := &field.ManualTicker{}
		sim.Start(pump)
		pump.Advance(ticks)
		sim.Stop()
	} else {
		fps := cfg.Window.TargetFPS
		if fps <= 0 {
			fps = 60
		}
		sim.Start(field.NewIntervalTicker(time.Second / time.Duration(fps)))

		if duration > 0 {
			time.Sleep(duration)
		} else {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
		}
		sim.Stop()
	}

	if collector != nil {
		collector.Flush()
		history := collector.History()
		if out != nil && cfg.Telemetry.Chart && len(history) >= 2 {
			path := filepath.Join(out.Dir(), "activity.png")
			if err := telemetry.RenderTimeline(history, path); err != nil {
				slog.Warn("failed to render timeline", "error", err)
			} else {
				slog.Info("timeline rendered", "path", path)
			}
		}
	}
	if err := out.Close(); err != nil {
		slog.Warn("failed to close telemetry output", "error", err)
	}

	slog.Info("headless run complete", "ticks", sim.Ticks())
}
