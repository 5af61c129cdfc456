// Package config provides configuration loading and access for the backdrop.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all backdrop configuration parameters.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Field     FieldConfig     `yaml:"field"`
	Theme     ThemeConfig     `yaml:"theme"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Log       LogConfig       `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// FieldConfig holds particle field parameters.
// The width-to-count ladder is fixed in code, not configured here.
type FieldConfig struct {
	LinkRange      float64 `yaml:"link_range"`       // max pair distance for a connection line, surface units
	LinkAlphaScale float64 `yaml:"link_alpha_scale"` // line alpha at zero distance
	LinkWidth      float64 `yaml:"link_width"`       // stroke width in pixels
	ShimmerAmp     float64 `yaml:"shimmer_amp"`      // opacity oscillation amplitude
	ShimmerRate    float64 `yaml:"shimmer_rate"`     // radians per millisecond
	SpeedScale     float64 `yaml:"speed_scale"`      // velocity per axis is (rand-0.5)*this
	RadiusMin      float64 `yaml:"radius_min"`
	RadiusMax      float64 `yaml:"radius_max"`
	BaseAlphaMin   float64 `yaml:"base_alpha_min"`
	BaseAlphaMax   float64 `yaml:"base_alpha_max"`
}

// ThemeConfig holds display colors as hex strings ("#rrggbb").
type ThemeConfig struct {
	Background string `yaml:"background"`
	Dot        string `yaml:"dot"`
	Link       string `yaml:"link"`
	Accent     string `yaml:"accent"` // probe highlight and panel trim
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	WindowTicks int    `yaml:"window_ticks"` // ticks per stats window
	FlowHistory int    `yaml:"flow_history"` // windows kept for flow event detection
	PerfWindow  int    `yaml:"perf_window"`  // samples per perf phase
	OutDir      string `yaml:"out_dir"`
	Chart       bool   `yaml:"chart"` // render a PNG timeline at shutdown
}

// HeadlessConfig holds the logical surface size for windowless runs.
type HeadlessConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	LinkRange32      float32
	LinkAlphaScale32 float32
	LinkWidth32      float32
	ShimmerAmp32     float32
	SpeedScale32     float32
	RadiusMin32      float32
	RadiusMax32      float32
	BaseAlphaMin32   float32
	BaseAlphaMax32   float32
	Theme            Theme // parsed colors
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.LinkRange32 = float32(c.Field.LinkRange)
	c.Derived.LinkAlphaScale32 = float32(c.Field.LinkAlphaScale)
	c.Derived.LinkWidth32 = float32(c.Field.LinkWidth)
	c.Derived.ShimmerAmp32 = float32(c.Field.ShimmerAmp)
	c.Derived.SpeedScale32 = float32(c.Field.SpeedScale)
	c.Derived.RadiusMin32 = float32(c.Field.RadiusMin)
	c.Derived.RadiusMax32 = float32(c.Field.RadiusMax)
	c.Derived.BaseAlphaMin32 = float32(c.Field.BaseAlphaMin)
	c.Derived.BaseAlphaMax32 = float32(c.Field.BaseAlphaMax)

	theme, err := c.Theme.parse()
	if err != nil {
		return fmt.Errorf("parsing theme: %w", err)
	}
	c.Derived.Theme = theme

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
