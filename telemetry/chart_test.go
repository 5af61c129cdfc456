package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderTimeline(t *testing.T) {
	history := []WindowStats{
		{WindowEndTick: 300, LinksMean: 4, BounceRate: 0.1},
		{WindowEndTick: 600, LinksMean: 6, BounceRate: 0.3},
		{WindowEndTick: 900, LinksMean: 5, BounceRate: 0.2},
	}

	path := filepath.Join(t.TempDir(), "activity.png")
	if err := RenderTimeline(history, path); err != nil {
		t.Fatalf("RenderTimeline: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty chart file")
	}
}

func TestRenderTimelineTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.png")

	err := RenderTimeline([]WindowStats{{WindowEndTick: 300}}, path)
	if err == nil {
		t.Error("expected error with a single window")
	}
}
