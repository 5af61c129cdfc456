package telemetry

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderTimeline renders link activity and bounce rate per window to a PNG.
// Needs at least two closed windows to draw a line.
func RenderTimeline(history []WindowStats, path string) error {
	if len(history) < 2 {
		return fmt.Errorf("timeline needs at least 2 windows, have %d", len(history))
	}

	ticks := make([]float64, len(history))
	links := make([]float64, len(history))
	bounceRate := make([]float64, len(history))
	for i, ws := range history {
		ticks[i] = float64(ws.WindowEndTick)
		links[i] = ws.LinksMean
		bounceRate[i] = ws.BounceRate
	}

	graph := chart.Chart{
		Title:  "field activity",
		Width:  1024,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "tick",
		},
		YAxis: chart.YAxis{
			Name: "links",
		},
		YAxisSecondary: chart.YAxis{
			Name: "bounces/tick",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "links_mean",
				XValues: ticks,
				YValues: links,
			},
			chart.ContinuousSeries{
				Name:    "bounce_rate",
				YAxis:   chart.YAxisSecondary,
				XValues: ticks,
				YValues: bounceRate,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	return nil
}
