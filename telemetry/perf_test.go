package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/Blooh123/JasminRojo/field"
)

func tickStats(advance, frame, draw time.Duration) field.TickStats {
	return field.TickStats{Advance: advance, Frame: frame, Draw: draw}
}

func TestPerfCollector_PhaseBreakdown(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordTick(tickStats(2*time.Millisecond, time.Millisecond, time.Millisecond))
	pc.RecordTick(tickStats(4*time.Millisecond, 2*time.Millisecond, 2*time.Millisecond))
	pc.RecordTick(tickStats(6*time.Millisecond, 3*time.Millisecond, 3*time.Millisecond))

	stats := pc.Stats()

	if stats.AvgTickDuration != 8*time.Millisecond {
		t.Errorf("avg tick = %v, want 8ms", stats.AvgTickDuration)
	}
	if stats.MinTickDuration != 4*time.Millisecond {
		t.Errorf("min tick = %v, want 4ms", stats.MinTickDuration)
	}
	if stats.MaxTickDuration != 12*time.Millisecond {
		t.Errorf("max tick = %v, want 12ms", stats.MaxTickDuration)
	}

	if math.Abs(stats.AdvancePct-50) > 0.001 {
		t.Errorf("advance pct = %v, want 50", stats.AdvancePct)
	}
	if math.Abs(stats.FramePct-25) > 0.001 {
		t.Errorf("frame pct = %v, want 25", stats.FramePct)
	}
	if math.Abs(stats.DrawPct-25) > 0.001 {
		t.Errorf("draw pct = %v, want 25", stats.DrawPct)
	}

	if math.Abs(stats.TicksPerSecond-125) > 0.001 {
		t.Errorf("ticks per second = %v, want 125", stats.TicksPerSecond)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(2)

	pc.RecordTick(tickStats(10*time.Millisecond, 0, 0))
	pc.RecordTick(tickStats(20*time.Millisecond, 0, 0))
	pc.RecordTick(tickStats(30*time.Millisecond, 0, 0))

	stats := pc.Stats()

	// The 10ms sample has been overwritten
	if stats.AvgTickDuration != 25*time.Millisecond {
		t.Errorf("avg tick = %v, want 25ms", stats.AvgTickDuration)
	}
	if stats.MinTickDuration != 20*time.Millisecond {
		t.Errorf("min tick = %v, want 20ms", stats.MinTickDuration)
	}
	if stats.MaxTickDuration != 30*time.Millisecond {
		t.Errorf("max tick = %v, want 30ms", stats.MaxTickDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.TicksPerSecond != 0 {
		t.Error("expected zero throughput for empty collector")
	}
	if stats.FPS != 0 {
		t.Error("expected zero FPS before any frames")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// First call establishes baseline
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond) // ~60fps frame time
	// Second call measures duration
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}

	// With 16ms frames, expect ~60 FPS (allow range 40-80)
	if stats.FPS < 40 || stats.FPS > 80 {
		t.Errorf("expected FPS between 40-80 with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 8 * time.Millisecond,
		MinTickDuration: 4 * time.Millisecond,
		MaxTickDuration: 12 * time.Millisecond,
		AdvancePct:      50,
		FramePct:        25,
		DrawPct:         25,
		TicksPerSecond:  125,
		FPS:             60,
	}

	row := stats.ToCSV(900)

	if row.WindowEnd != 900 {
		t.Errorf("window end = %d, want 900", row.WindowEnd)
	}
	if row.AvgTickUS != 8000 {
		t.Errorf("avg tick us = %d, want 8000", row.AvgTickUS)
	}
	if row.MinTickUS != 4000 || row.MaxTickUS != 12000 {
		t.Errorf("min/max us = %d/%d, want 4000/12000", row.MinTickUS, row.MaxTickUS)
	}
	if row.AdvancePct != 50 || row.FramePct != 25 || row.DrawPct != 25 {
		t.Errorf("phase pcts = %v/%v/%v, want 50/25/25", row.AdvancePct, row.FramePct, row.DrawPct)
	}
	if row.FPS != 60 {
		t.Errorf("fps = %v, want 60", row.FPS)
	}
}
