package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Trail.MaxParticles != 150 {
		t.Errorf("max_particles = %d, want 150", cfg.Trail.MaxParticles)
	}
	if cfg.Trail.MaxSpawnPerTick != 3 {
		t.Errorf("max_spawn_per_tick = %d, want 3", cfg.Trail.MaxSpawnPerTick)
	}
	if cfg.Derived.CoalesceDelay != 10*time.Millisecond {
		t.Errorf("coalesce delay = %v, want 10ms", cfg.Derived.CoalesceDelay)
	}
	if cfg.Derived.CloneDuration != time.Second {
		t.Errorf("clone duration = %v, want 1s", cfg.Derived.CloneDuration)
	}
	if cfg.Mascot.RunThreshold != 5 {
		t.Errorf("run_threshold = %v, want 5", cfg.Mascot.RunThreshold)
	}

	want := []string{"about", "experience", "projects", "skills"}
	if len(cfg.Mascot.Sections) != len(want) {
		t.Fatalf("mascot sections = %v, want %v", cfg.Mascot.Sections, want)
	}
	for i, id := range want {
		if cfg.Mascot.Sections[i] != id {
			t.Errorf("mascot section %d = %q, want %q", i, cfg.Mascot.Sections[i], id)
		}
	}

	if got := len(cfg.Mascot.Messages[DefaultSection]); got != 2 {
		t.Errorf("default messages = %d, want 2", got)
	}

	var height float64
	for _, s := range cfg.Page.Sections {
		height += s.Height
	}
	if cfg.Derived.PageHeight != height {
		t.Errorf("page height = %v, want %v", cfg.Derived.PageHeight, height)
	}
}

func TestPaletteParsing(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	want := color.RGBA{R: 0x58, G: 0xa6, B: 0xff, A: 255}
	if got := cfg.Palette(true).Accent; got != want {
		t.Errorf("dark accent = %v, want %v", got, want)
	}
	want = color.RGBA{R: 0x09, G: 0x69, B: 0xda, A: 255}
	if got := cfg.Palette(false).Accent; got != want {
		t.Errorf("light accent = %v, want %v", got, want)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("trail:\n  max_particles: 40\ntheme:\n  start: light\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}
	if cfg.Trail.MaxParticles != 40 {
		t.Errorf("max_particles = %d, want 40", cfg.Trail.MaxParticles)
	}
	if cfg.Theme.Start != "light" {
		t.Errorf("theme.start = %q, want light", cfg.Theme.Start)
	}
	// Untouched keys keep their defaults
	if cfg.Trail.LifeStep != 0.02 {
		t.Errorf("life_step = %v, want 0.02", cfg.Trail.LifeStep)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_MAX_PARTICLES", "12")
	t.Setenv("FOLIO_THEME", "light")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Trail.MaxParticles != 12 {
		t.Errorf("max_particles = %d, want 12", cfg.Trail.MaxParticles)
	}
	if cfg.Theme.Start != "light" {
		t.Errorf("theme.start = %q, want light", cfg.Theme.Start)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero cap", "trail:\n  max_particles: 0\n"},
		{"bad theme", "theme:\n  start: sepia\n"},
		{"bad hex", "theme:\n  dark:\n    accent: \"#zzz\"\n"},
		{"inverted band", "mascot:\n  band_top: 0.7\n  band_bottom: 0.3\n"},
		{"empty default messages", "mascot:\n  messages:\n    default: []\n"},
		{"duplicate section", "page:\n  sections:\n    - {id: about, height: 10}\n    - {id: about, height: 10}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Trail.MaxParticles = 77

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if reloaded.Trail.MaxParticles != 77 {
		t.Errorf("max_particles = %d, want 77", reloaded.Trail.MaxParticles)
	}
}
