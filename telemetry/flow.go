package telemetry

import (
	"fmt"
	"log/slog"
)

// FlowEventType identifies the type of flow event.
type FlowEventType string

const (
	FlowLinkSurge FlowEventType = "link_surge"
	FlowTickSpike FlowEventType = "tick_spike"
	FlowBecalmed  FlowEventType = "becalmed"
)

// FlowEvent marks a window where field activity departed from its recent
// baseline.
type FlowEvent struct {
	Type        FlowEventType `csv:"type"`
	Tick        int           `csv:"tick"`
	Description string        `csv:"description"`
}

// Log logs the flow event using slog.
func (e FlowEvent) Log() {
	slog.Info("flow",
		"type", string(e.Type),
		"tick", e.Tick,
		"description", e.Description,
	)
}

// becalmedWindows is how many consecutive bounce-free windows trigger a
// becalmed event.
const becalmedWindows = 5

// FlowDetector detects notable shifts in field activity.
type FlowDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	calmStreak int // consecutive windows without a wall hit
}

// NewFlowDetector creates a detector with the given history size.
func NewFlowDetector(historySize int) *FlowDetector {
	if historySize < becalmedWindows {
		historySize = becalmedWindows
	}
	return &FlowDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered events.
func (fd *FlowDetector) Check(stats WindowStats) []FlowEvent {
	var events []FlowEvent

	if fd.historyFull || fd.historyIdx > 0 {
		// Link surge: mean link count > 2x rolling average
		if e := fd.checkLinkSurge(stats); e != nil {
			events = append(events, *e)
		}

		// Tick spike: worst step time > 2x rolling average
		if e := fd.checkTickSpike(stats); e != nil {
			events = append(events, *e)
		}
	}

	// Becalmed: no wall hits for several consecutive windows
	if e := fd.checkBecalmed(stats); e != nil {
		events = append(events, *e)
	}

	fd.addToHistory(stats)

	return events
}

func (fd *FlowDetector) addToHistory(stats WindowStats) {
	fd.history[fd.historyIdx] = stats
	fd.historyIdx = (fd.historyIdx + 1) % fd.historySize
	if fd.historyIdx == 0 {
		fd.historyFull = true
	}
}

func (fd *FlowDetector) getHistory() []WindowStats {
	if fd.historyFull {
		return fd.history
	}
	return fd.history[:fd.historyIdx]
}

func (fd *FlowDetector) checkLinkSurge(stats WindowStats) *FlowEvent {
	history := fd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.LinksMean
	}
	avgLinks := total / float64(len(history))

	if avgLinks == 0 {
		return nil
	}

	if stats.LinksMean > avgLinks*2.0 && stats.LinksMean >= 10 {
		return &FlowEvent{
			Type:        FlowLinkSurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Links averaged %.1f, %.1fx the rolling mean (%.1f)", stats.LinksMean, stats.LinksMean/avgLinks, avgLinks),
		}
	}

	return nil
}

func (fd *FlowDetector) checkTickSpike(stats WindowStats) *FlowEvent {
	history := fd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.TickUSMean
	}
	avgTick := total / float64(len(history))

	if avgTick == 0 {
		return nil
	}

	// 500us floor keeps sub-millisecond jitter from triggering spikes
	if stats.TickUSMax > avgTick*2.0 && stats.TickUSMax > 500 {
		return &FlowEvent{
			Type:        FlowTickSpike,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Worst tick %.0fus vs rolling mean %.0fus", stats.TickUSMax, avgTick),
		}
	}

	return nil
}

func (fd *FlowDetector) checkBecalmed(stats WindowStats) *FlowEvent {
	if stats.Bounces > 0 {
		fd.calmStreak = 0
		return nil
	}

	fd.calmStreak++
	if fd.calmStreak == becalmedWindows { // trigger exactly once per streak
		return &FlowEvent{
			Type:        FlowBecalmed,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No wall hits for %d consecutive windows", becalmedWindows),
		}
	}

	return nil
}
