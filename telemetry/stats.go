// Package telemetry aggregates per-tick field activity into windowed
// statistics, CSV output, and flow event detection.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Field shape at window end
	Dots int `csv:"dots"`

	// Link activity across the window
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksP95  float64 `csv:"links_p95"`
	LinksMax  int     `csv:"links_max"`

	// Wall hits across the window
	Bounces    int     `csv:"bounces"`
	BounceRate float64 `csv:"bounce_rate"` // bounces per tick

	// Shimmer distribution (sampled at window end)
	AlphaMean float64 `csv:"alpha_mean"`
	AlphaStd  float64 `csv:"alpha_std"`
	AlphaP10  float64 `csv:"alpha_p10"`
	AlphaP90  float64 `csv:"alpha_p90"`

	// Step timing
	TickUSMean float64 `csv:"tick_us_mean"`
	TickUSMax  float64 `csv:"tick_us_max"`
}

// MeanStd returns the mean and sample standard deviation of values.
// Fewer than two values have zero deviation.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(values, nil)
}

// Quantile returns the p-quantile of values, interpolating linearly between
// order statistics. p is in [0, 1]. Returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("dots", s.Dots),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_std", s.LinksStd),
		slog.Float64("links_p95", s.LinksP95),
		slog.Int("links_max", s.LinksMax),
		slog.Int("bounces", s.Bounces),
		slog.Float64("bounce_rate", s.BounceRate),
		slog.Float64("alpha_mean", s.AlphaMean),
		slog.Float64("alpha_std", s.AlphaStd),
		slog.Float64("alpha_p10", s.AlphaP10),
		slog.Float64("alpha_p90", s.AlphaP90),
		slog.Float64("tick_us_mean", s.TickUSMean),
		slog.Float64("tick_us_max", s.TickUSMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"dots", s.Dots,
		"links_mean", s.LinksMean,
		"links_std", s.LinksStd,
		"links_p95", s.LinksP95,
		"links_max", s.LinksMax,
		"bounces", s.Bounces,
		"bounce_rate", s.BounceRate,
		"alpha_mean", s.AlphaMean,
		"alpha_std", s.AlphaStd,
		"alpha_p10", s.AlphaP10,
		"alpha_p90", s.AlphaP90,
		"tick_us_mean", s.TickUSMean,
		"tick_us_max", s.TickUSMax,
	)
}
