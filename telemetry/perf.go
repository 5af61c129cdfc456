package telemetry

import (
	"log/slog"
	"time"

	"github.com/Blooh123/JasminRojo/field"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	Tick    time.Duration
	Advance time.Duration
	Frame   time.Duration
	Draw    time.Duration
}

// PerfCollector tracks step timing over a rolling window of ticks.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	// Frame timing (for graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]PerfSample, windowSize),
	}
}

// RecordTick records the phase timings of one simulation tick.
func (p *PerfCollector) RecordTick(stats field.TickStats) {
	sample := PerfSample{
		Tick:    stats.Advance + stats.Frame + stats.Draw,
		Advance: stats.Advance,
		Frame:   stats.Frame,
		Draw:    stats.Draw,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Tick timing
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Phase breakdown (average durations)
	AdvanceAvg time.Duration
	FrameAvg   time.Duration
	DrawAvg    time.Duration

	// Phase percentages of total tick time
	AdvancePct float64
	FramePct   float64
	DrawPct    float64

	// Throughput
	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	// Frame timing is always available (independent of tick samples)
	var fps float64
	if p.frameDuration > 0 {
		fps = float64(time.Second) / float64(p.frameDuration)
	}

	if p.sampleCount == 0 {
		return PerfStats{
			FrameDuration: p.frameDuration,
			FPS:           fps,
		}
	}

	var totalTick, totalAdvance, totalFrame, totalDraw time.Duration
	var minTick, maxTick time.Duration

	// Iterate over valid samples
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalTick += s.Tick
		totalAdvance += s.Advance
		totalFrame += s.Frame
		totalDraw += s.Draw

		if i == 0 || s.Tick < minTick {
			minTick = s.Tick
		}
		if s.Tick > maxTick {
			maxTick = s.Tick
		}
	}

	n := time.Duration(p.sampleCount)
	avgTick := totalTick / n

	stats := PerfStats{
		AvgTickDuration: avgTick,
		MinTickDuration: minTick,
		MaxTickDuration: maxTick,
		AdvanceAvg:      totalAdvance / n,
		FrameAvg:        totalFrame / n,
		DrawAvg:         totalDraw / n,
		FrameDuration:   p.frameDuration,
		FPS:             fps,
	}

	if avgTick > 0 {
		stats.AdvancePct = float64(stats.AdvanceAvg) / float64(avgTick) * 100
		stats.FramePct = float64(stats.FrameAvg) / float64(avgTick) * 100
		stats.DrawPct = float64(stats.DrawAvg) / float64(avgTick) * 100
		stats.TicksPerSecond = float64(time.Second) / float64(avgTick)
	}

	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	attrs = append(attrs,
		"advance_pct", int(s.AdvancePct*10)/10.0,
		"frame_pct", int(s.FramePct*10)/10.0,
		"draw_pct", int(s.DrawPct*10)/10.0,
	)

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	attrs = append(attrs,
		slog.Float64("advance_pct", s.AdvancePct),
		slog.Float64("frame_pct", s.FramePct),
		slog.Float64("draw_pct", s.DrawPct),
	)

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd   int     `csv:"window_end"`
	AvgTickUS   int64   `csv:"avg_tick_us"`
	MinTickUS   int64   `csv:"min_tick_us"`
	MaxTickUS   int64   `csv:"max_tick_us"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
	FPS         float64 `csv:"fps"`
	AdvancePct  float64 `csv:"advance_pct"`
	FramePct    float64 `csv:"frame_pct"`
	DrawPct     float64 `csv:"draw_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MinTickUS:   s.MinTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
		AdvancePct:  s.AdvancePct,
		FramePct:    s.FramePct,
		DrawPct:     s.DrawPct,
	}
}
