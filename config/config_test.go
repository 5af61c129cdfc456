package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Field.LinkRange != 100.0 {
		t.Errorf("expected link range 100, got %f", cfg.Field.LinkRange)
	}
	if cfg.Field.SpeedScale != 0.3 {
		t.Errorf("expected speed scale 0.3, got %f", cfg.Field.SpeedScale)
	}
	if cfg.Derived.LinkRange32 != 100.0 {
		t.Errorf("derived link range not computed, got %f", cfg.Derived.LinkRange32)
	}

	// #e6edf3 dot: red channel 0xe6/255
	wantR := float64(0xe6) / 255.0
	if math.Abs(cfg.Derived.Theme.Dot.R-wantR) > 1e-9 {
		t.Errorf("expected dot red %f, got %f", wantR, cfg.Derived.Theme.Dot.R)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	overlay := []byte("field:\n  link_range: 140.0\nwindow:\n  title: \"test field\"\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	if cfg.Field.LinkRange != 140.0 {
		t.Errorf("overlay did not apply, link range %f", cfg.Field.LinkRange)
	}
	if cfg.Window.Title != "test field" {
		t.Errorf("overlay did not apply, title %q", cfg.Window.Title)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Field.SpeedScale != 0.3 {
		t.Errorf("default lost after overlay, speed scale %f", cfg.Field.SpeedScale)
	}
}

func TestLoadBadThemeColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	overlay := []byte("theme:\n  dot: \"not-a-color\"\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid hex color, got nil")
	}
}

func TestThemeAccentFallback(t *testing.T) {
	tc := ThemeConfig{
		Background: "#000000",
		Dot:        "#e6edf3",
		Link:       "#e6edf3",
		Accent:     "",
	}

	theme, err := tc.parse()
	if err != nil {
		t.Fatalf("parsing theme: %v", err)
	}

	// Fallback accent is a darker shade of the dot color
	_, _, dotL := theme.Dot.Hsl()
	_, _, accL := theme.Accent.Hsl()
	if accL >= dotL {
		t.Errorf("expected accent darker than dot, lightness %f >= %f", accL, dotL)
	}
}
