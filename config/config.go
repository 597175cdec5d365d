// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Population PopulationConfig `yaml:"population"`
	Root       RootConfig       `yaml:"root"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Tint       TintConfig       `yaml:"tint"`
	HUD        HUDConfig        `yaml:"hud"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Color is an RGBA quadruple as written in YAML: [r, g, b, a].
type Color [4]uint8

// ToRGBA converts to the image/color representation used by the simulation.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// ScreenConfig holds display settings. The arena is the whole screen.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PopulationConfig holds tree growth limits.
type PopulationConfig struct {
	GenerationMax int     `yaml:"generation_max"` // No spawning once a node reaches this generation
	MinChildren   int     `yaml:"min_children"`   // Inclusive lower bound of a cluster
	MaxChildren   int     `yaml:"max_children"`   // Inclusive upper bound of a cluster
	Speed         float64 `yaml:"speed"`          // Velocity magnitude of every node, units per frame
}

// RootConfig describes the single circle created at startup.
type RootConfig struct {
	Radius  uint32  `yaml:"radius"`
	OffsetX float64 `yaml:"offset_x"` // Offset from the arena center
	OffsetY float64 `yaml:"offset_y"`
	Color   Color   `yaml:"color"`
}

// SpawnConfig holds the fan-out geometry of a cluster.
type SpawnConfig struct {
	SpreadDeg       float64 `yaml:"spread_deg"`        // Divided by the child count
	SpreadOffsetDeg float64 `yaml:"spread_offset_deg"` // Subtracted from the parent heading
}

// TintConfig holds color transition parameters.
type TintConfig struct {
	Blend float32 `yaml:"blend"` // Fraction of the remaining distance covered per frame
}

// HUDConfig holds overlay placement and colors.
type HUDConfig struct {
	Background Color `yaml:"background"`
	FPSX       int32 `yaml:"fps_x"`
	FPSY       int32 `yaml:"fps_y"`
	TextX      int32 `yaml:"text_x"`
	TextY      int32 `yaml:"text_y"`
	TextSize   int32 `yaml:"text_size"`
	TextColor  Color `yaml:"text_color"`
	StatusBar  bool  `yaml:"status_bar"` // Population breakdown along the bottom edge
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of frames at target FPS
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	BookmarkHistorySize int     `yaml:"bookmark_history_size"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaW          float64 // Screen.Width as float64
	ArenaH          float64 // Screen.Height as float64
	Spread          float64 // Spawn.SpreadDeg in radians
	SpreadOffset    float64 // Spawn.SpreadOffsetDeg in radians
	StatsWindowTick int32   // Telemetry.StatsWindow in frames at the target rate
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	cfg.ComputeDerived()

	return cfg, nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after changing fields in code.
func (c *Config) ComputeDerived() {
	c.Derived.ArenaW = float64(c.Screen.Width)
	c.Derived.ArenaH = float64(c.Screen.Height)
	c.Derived.Spread = c.Spawn.SpreadDeg * math.Pi / 180
	c.Derived.SpreadOffset = c.Spawn.SpreadOffsetDeg * math.Pi / 180

	ticks := int32(c.Telemetry.StatsWindow * float64(c.Screen.TargetFPS))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsWindowTick = ticks
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
