// Package config provides configuration loading and access for the wall.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/drift/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all wall configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Cells     CellsConfig     `yaml:"cells"`
	Palette   PaletteConfig   `yaml:"palette"`
	Macro     FieldConfig     `yaml:"macro"`
	Micro     FieldConfig     `yaml:"micro"`
	Drift     DriftConfig     `yaml:"drift"`
	Signal    SignalConfig    `yaml:"signal"`
	Mask      MaskConfig      `yaml:"mask"`
	Alpha     AlphaConfig     `yaml:"alpha"`
	Animation AnimationConfig `yaml:"animation"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CellsConfig holds grid geometry and accent assignment parameters.
// Changing any of these invalidates cell identity and requires a grid rebuild.
type CellsConfig struct {
	Size        float64 `yaml:"size"`          // Cell edge length in pixels
	Gap         float64 `yaml:"gap"`           // Spacing between cells; pitch = size + gap
	AccentAProb float64 `yaml:"accent_a_prob"` // Probability an unblocked cell becomes accent A
	AccentBProb float64 `yaml:"accent_b_prob"` // Probability mass for accent B above the A band
}

// PaletteConfig holds the wall colors as hex strings ("#rrggbb").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Base       string `yaml:"base"`
	AccentA    string `yaml:"accent_a"`
	AccentB    string `yaml:"accent_b"`
}

// FieldConfig holds the sampling parameters for one noise field.
// Macro carries the coarse cloud shape, micro the fine texture riding on it.
type FieldConfig struct {
	Scale     float64 `yaml:"scale"`      // Spatial frequency in cell units
	Threshold float64 `yaml:"threshold"`  // Center of the smoothstep band on the [0,1] remapped field
	Feather   float64 `yaml:"feather"`    // Half-width of the band edge
	TimeScale float64 `yaml:"time_scale"` // Speed along the noise time axis
}

// DriftConfig holds the shared advection velocity, in cells per second.
// Both noise fields are sampled at the same advected position so the fine
// texture travels with the coarse cloud.
type DriftConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SignalConfig holds activation shaping parameters.
type SignalConfig struct {
	BiasStrength     float64 `yaml:"bias_strength"`      // Weight of the per-cell bias term
	Gamma            float64 `yaml:"gamma"`              // Response exponent; >1 snappier transitions
	Smoothing        float64 `yaml:"smoothing"`          // Per-frame EMA weight in (0,1]
	ColorMixStrength float64 `yaml:"color_mix_strength"` // Activation-to-accent-mix gain
}

// MaskConfig holds the vertical visibility band parameters.
type MaskConfig struct {
	Height   float64 `yaml:"height"`    // Visible fraction of the surface, from the bottom
	FeatherY float64 `yaml:"feather_y"` // Normalized fade band below the mask threshold
}

// AlphaConfig holds cell opacity parameters. Base + active boost should not
// exceed 1; the resolver does not re-clamp.
type AlphaConfig struct {
	Base        float64 `yaml:"base"`         // Opacity of a fully idle cell
	ActiveBoost float64 `yaml:"active_boost"` // Added opacity at full activation
}

// AnimationConfig holds frame-loop behavior settings.
type AnimationConfig struct {
	TimeScale float64 `yaml:"time_scale"` // Host time units to engine seconds
	Motion    bool    `yaml:"motion"`     // False renders the frozen t=0 pattern
	DebugView bool    `yaml:"debug_view"` // Grayscale activation view
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`          // Frames per activation stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"` // Frames retained by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Pitch float64 // Cells.Size + Cells.Gap
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
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Pitch = c.Cells.Size + c.Cells.Gap
}

// Recompute refreshes derived values after in-place edits, such as slider
// changes from the tuning panel.
func (c *Config) Recompute() {
	c.computeDerived()
}

// EngineParams flattens the grouped config into the per-frame parameter
// snapshot the engine consumes. Callers take a fresh snapshot each frame so
// live edits from the tuning panel never tear a frame mid-computation.
func (c *Config) EngineParams() field.Params {
	return field.Params{
		CellSize:         c.Cells.Size,
		Gap:              c.Cells.Gap,
		AccentAProb:      c.Cells.AccentAProb,
		AccentBProb:      c.Cells.AccentBProb,
		MacroScale:       c.Macro.Scale,
		MacroThreshold:   c.Macro.Threshold,
		MacroFeather:     c.Macro.Feather,
		MacroTimeScale:   c.Macro.TimeScale,
		MicroScale:       c.Micro.Scale,
		MicroThreshold:   c.Micro.Threshold,
		MicroFeather:     c.Micro.Feather,
		MicroTimeScale:   c.Micro.TimeScale,
		DriftX:           c.Drift.X,
		DriftY:           c.Drift.Y,
		BiasStrength:     c.Signal.BiasStrength,
		Gamma:            c.Signal.Gamma,
		Smoothing:        c.Signal.Smoothing,
		ColorMixStrength: c.Signal.ColorMixStrength,
		BaseAlpha:        c.Alpha.Base,
		ActiveAlphaBoost: c.Alpha.ActiveBoost,
		MaskHeight:       c.Mask.Height,
		MaskFeatherY:     c.Mask.FeatherY,
		TimeScale:        c.Animation.TimeScale,
		DebugView:        c.Animation.DebugView,
	}
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
