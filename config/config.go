// Package config provides configuration loading and access for the overlay.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultSection is the message set used when no tracked section is in view.
const DefaultSection = "default"

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Trail     TrailConfig     `yaml:"trail"`
	Theme     ThemeConfig     `yaml:"theme"`
	Page      PageConfig      `yaml:"page"`
	Mascot    MascotConfig    `yaml:"mascot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width" env:"FOLIO_SCREEN_WIDTH"`
	Height    int `yaml:"height" env:"FOLIO_SCREEN_HEIGHT"`
	TargetFPS int `yaml:"target_fps" env:"FOLIO_TARGET_FPS"`
}

// TrailConfig holds particle trail parameters.
type TrailConfig struct {
	MaxParticles    int     `yaml:"max_particles" env:"FOLIO_MAX_PARTICLES"`
	MaxSpawnPerTick int     `yaml:"max_spawn_per_tick"`
	LifeStep        float64 `yaml:"life_step"`   // Life lost per tick
	ShrinkStep      float64 `yaml:"shrink_step"` // Size lost per tick while above MinSize
	MinSize         float64 `yaml:"min_size"`
	Opacity         float64 `yaml:"opacity"` // Alpha = life * opacity
	CoalesceMS      int     `yaml:"coalesce_ms"`
}

// ThemeConfig holds the two palettes and which one is active at startup.
type ThemeConfig struct {
	Start string        `yaml:"start" env:"FOLIO_THEME"` // "light" or "dark"
	Light PaletteConfig `yaml:"light"`
	Dark  PaletteConfig `yaml:"dark"`
}

// PaletteConfig holds hex colors for one theme.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
}

// PageConfig holds the scrollable page layout.
type PageConfig struct {
	ScrollStep      float64         `yaml:"scroll_step"` // Pixels per wheel notch
	SpringFrequency float64         `yaml:"spring_frequency"`
	SpringDamping   float64         `yaml:"spring_damping"`
	Sections        []SectionConfig `yaml:"sections"`
}

// SectionConfig describes one vertical block of the page.
type SectionConfig struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Height float64 `yaml:"height"`
}

// MascotConfig holds mascot controller parameters.
type MascotConfig struct {
	EdgeMargin          float64             `yaml:"edge_margin"`
	WidthInset          float64             `yaml:"width_inset"`
	RunThreshold        float64             `yaml:"run_threshold"` // Scroll delta must exceed this to run
	BandTop             float64             `yaml:"band_top"`      // Fraction of viewport height
	BandBottom          float64             `yaml:"band_bottom"`
	PulseMS             int                 `yaml:"pulse_ms"`
	CloneMS             int                 `yaml:"clone_ms"`
	CloneOffset         float64             `yaml:"clone_offset"`
	CloneMessage        string              `yaml:"clone_message"`
	DoubleClickMS       int                 `yaml:"double_click_ms"`
	DoubleClickDistance float64             `yaml:"double_click_distance"`
	Sections            []string            `yaml:"sections"` // Detection order
	Messages            map[string][]string `yaml:"messages"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window" env:"FOLIO_STATS_WINDOW"` // Seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// Palette holds parsed theme colors.
type Palette struct {
	Background color.RGBA
	Surface    color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Accent     color.RGBA
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Light         Palette
	Dark          Palette
	CoalesceDelay time.Duration
	PulseDuration time.Duration
	CloneDuration time.Duration
	DoubleClick   time.Duration
	PageHeight    float64 // Sum of section heights
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults,
// then applies FOLIO_* environment overrides.
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

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the overlay cannot run with.
func (c *Config) validate() error {
	if c.Trail.MaxParticles <= 0 {
		return fmt.Errorf("trail.max_particles must be positive, got %d", c.Trail.MaxParticles)
	}
	if c.Trail.MaxSpawnPerTick <= 0 {
		return fmt.Errorf("trail.max_spawn_per_tick must be positive, got %d", c.Trail.MaxSpawnPerTick)
	}
	if c.Trail.LifeStep <= 0 {
		return fmt.Errorf("trail.life_step must be positive, got %v", c.Trail.LifeStep)
	}
	if c.Theme.Start != "light" && c.Theme.Start != "dark" {
		return fmt.Errorf("theme.start must be light or dark, got %q", c.Theme.Start)
	}
	if c.Mascot.BandTop >= c.Mascot.BandBottom {
		return fmt.Errorf("mascot.band_top (%v) must be below band_bottom (%v)", c.Mascot.BandTop, c.Mascot.BandBottom)
	}
	if len(c.Mascot.Messages[DefaultSection]) == 0 {
		return fmt.Errorf("mascot.messages.%s must not be empty", DefaultSection)
	}
	for _, id := range c.Mascot.Sections {
		if len(c.Mascot.Messages[id]) == 0 {
			return fmt.Errorf("mascot.messages.%s must not be empty", id)
		}
	}
	seen := make(map[string]bool, len(c.Page.Sections))
	for _, s := range c.Page.Sections {
		if seen[s.ID] {
			return fmt.Errorf("page.sections: duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Height <= 0 {
			return fmt.Errorf("page.sections.%s: height must be positive", s.ID)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	light, err := c.Theme.Light.parse()
	if err != nil {
		return fmt.Errorf("theme.light: %w", err)
	}
	dark, err := c.Theme.Dark.parse()
	if err != nil {
		return fmt.Errorf("theme.dark: %w", err)
	}
	c.Derived.Light = light
	c.Derived.Dark = dark

	c.Derived.CoalesceDelay = time.Duration(c.Trail.CoalesceMS) * time.Millisecond
	c.Derived.PulseDuration = time.Duration(c.Mascot.PulseMS) * time.Millisecond
	c.Derived.CloneDuration = time.Duration(c.Mascot.CloneMS) * time.Millisecond
	c.Derived.DoubleClick = time.Duration(c.Mascot.DoubleClickMS) * time.Millisecond

	c.Derived.PageHeight = 0
	for _, s := range c.Page.Sections {
		c.Derived.PageHeight += s.Height
	}
	return nil
}

// Palette returns the parsed palette for the named theme.
func (c *Config) Palette(dark bool) Palette {
	if dark {
		return c.Derived.Dark
	}
	return c.Derived.Light
}

func (p PaletteConfig) parse() (Palette, error) {
	var out Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"surface", p.Surface, &out.Surface},
		{"text", p.Text, &out.Text},
		{"muted", p.Muted, &out.Muted},
		{"accent", p.Accent, &out.Accent},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
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
