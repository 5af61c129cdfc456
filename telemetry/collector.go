package telemetry

import (
	"log/slog"

	"github.com/Blooh123/JasminRojo/field"
)

// FrameSource exposes the most recent rendered frame so the collector can
// sample the shimmer distribution at window boundaries.
type FrameSource interface {
	Frame() field.Frame
}

// Collector accumulates per-tick stats within windows and produces
// WindowStats. It implements field.Observer. A nil *Collector is a no-op, so
// callers can wire it unconditionally.
type Collector struct {
	windowTicks int

	tick            int
	windowStartTick int

	// Accumulators for the current window
	dots    int
	links   []float64
	bounces int
	tickUS  []float64

	source FrameSource
	out    *OutputManager
	flow   *FlowDetector
	perf   *PerfCollector

	history []WindowStats
}

// NewCollector creates a collector that closes a window every windowTicks
// ticks. out, flow, and perf may be nil; the matching outputs are skipped.
func NewCollector(windowTicks int, source FrameSource, out *OutputManager, flow *FlowDetector, perf *PerfCollector) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		source:      source,
		out:         out,
		flow:        flow,
		perf:        perf,
	}
}

// Tick records one simulation tick and closes the window when it is full.
func (c *Collector) Tick(stats field.TickStats) {
	if c == nil {
		return
	}

	c.tick++
	c.dots = stats.Dots
	c.links = append(c.links, float64(stats.Links))
	c.bounces += stats.Bounces

	step := stats.Advance + stats.Frame + stats.Draw
	c.tickUS = append(c.tickUS, float64(step.Microseconds()))

	if c.tick-c.windowStartTick >= c.windowTicks {
		c.flush()
	}
}

// Flush closes the current window even if it is short, so the tail of a run
// still reaches the output.
func (c *Collector) Flush() {
	if c == nil || c.tick == c.windowStartTick {
		return
	}
	c.flush()
}

// History returns the windows closed so far.
func (c *Collector) History() []WindowStats {
	if c == nil {
		return nil
	}
	return c.history
}

func (c *Collector) flush() {
	stats := c.compute()
	stats.LogStats()

	// Output failures degrade to warnings; they never stop the field.
	if err := c.out.WriteStats(stats); err != nil {
		slog.Warn("telemetry output failed", "error", err)
	}

	if c.perf != nil {
		if err := c.out.WritePerf(c.perf.Stats(), stats.WindowEndTick); err != nil {
			slog.Warn("telemetry output failed", "error", err)
		}
	}

	if c.flow != nil {
		for _, event := range c.flow.Check(stats) {
			event.Log()
			if err := c.out.WriteFlowEvent(event); err != nil {
				slog.Warn("telemetry output failed", "error", err)
			}
		}
	}

	c.history = append(c.history, stats)

	c.windowStartTick = c.tick
	c.links = c.links[:0]
	c.bounces = 0
	c.tickUS = c.tickUS[:0]
}

func (c *Collector) compute() WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		Dots:            c.dots,
		Bounces:         c.bounces,
	}

	if ticks := c.tick - c.windowStartTick; ticks > 0 {
		stats.BounceRate = float64(c.bounces) / float64(ticks)
	}

	stats.LinksMean, stats.LinksStd = MeanStd(c.links)
	stats.LinksP95 = Quantile(c.links, 0.95)
	for _, l := range c.links {
		if int(l) > stats.LinksMax {
			stats.LinksMax = int(l)
		}
	}

	stats.TickUSMean, _ = MeanStd(c.tickUS)
	for _, us := range c.tickUS {
		if us > stats.TickUSMax {
			stats.TickUSMax = us
		}
	}

	if c.source != nil {
		frame := c.source.Frame()
		alphas := make([]float64, 0, len(frame.Dots))
		for _, d := range frame.Dots {
			alphas = append(alphas, float64(d.Alpha))
		}
		stats.AlphaMean, stats.AlphaStd = MeanStd(alphas)
		stats.AlphaP10 = Quantile(alphas, 0.10)
		stats.AlphaP90 = Quantile(alphas, 0.90)
	}

	return stats
}
