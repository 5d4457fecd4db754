package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Config == nil {
		opts.Config = testConfig(t)
	}
	opts.Headless = true
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func center(r components.Rect) components.Position {
	return components.Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func TestHeadlessRun(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newTestGame(t, Options{
		Seed:          1,
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	for g.Tick() < 600 {
		g.UpdateHeadless()
		if n := g.Trail().Count(); n > 150 {
			t.Fatalf("tick %d: %d particles exceeds cap", g.Tick(), n)
		}
	}

	if len(windows) != 2 {
		t.Fatalf("expected 2 stats windows of 300 ticks, got %d", len(windows))
	}
	if windows[0].Spawned == 0 {
		t.Error("expected particles spawned in first window")
	}
	if windows[0].ParticlesMax == 0 {
		t.Error("expected non-empty trail samples")
	}
	if g.Mascot().Stats().RunStarts == 0 {
		t.Error("expected scrolling to make the mascot run")
	}
	if g.Page().Offset() <= 0 {
		t.Error("expected autopilot to scroll the page")
	}
}

func TestDoubleClickTriggersClone(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})
	p := center(g.MascotBounds())

	g.Step(FrameInput{Mouse: p, Pressed: true})
	g.Step(FrameInput{Mouse: p, Pressed: true})

	v := g.Mascot().View()
	if v.Jutsu != systems.JutsuCloning {
		t.Fatalf("jutsu = %v, want cloning", v.Jutsu)
	}
	if v.Message != g.cfg.Mascot.CloneMessage {
		t.Errorf("message = %q, want clone message", v.Message)
	}

	for i := 0; i < 30; i++ {
		g.Step(FrameInput{})
	}
	if g.Mascot().View().Jutsu != systems.JutsuCloning {
		t.Fatal("clone released before one second")
	}

	for i := 0; i < 40; i++ {
		g.Step(FrameInput{})
	}
	if g.Mascot().View().Jutsu != systems.JutsuReady {
		t.Error("clone should be released after one second")
	}
}

func TestDoubleClickOutsideMascotIgnored(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})
	p := components.Position{X: 5, Y: 5}

	g.Step(FrameInput{Mouse: p, Pressed: true})
	g.Step(FrameInput{Mouse: p, Pressed: true})

	if g.Mascot().View().Jutsu != systems.JutsuReady {
		t.Error("double-click away from the mascot must not clone")
	}
}

func TestScrollDrivesMascot(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	g.Step(FrameInput{ScrollBy: 600})
	for i := 0; i < 180; i++ {
		g.Step(FrameInput{})
	}

	if g.Page().Offset() != 600 {
		t.Fatalf("offset = %f, want 600 after settling", g.Page().Offset())
	}
	v := g.Mascot().View()
	if v.Motion != systems.MotionIdle {
		t.Errorf("motion = %v, want idle after scrolling stops", v.Motion)
	}
	if v.Facing != systems.FacingRight {
		t.Errorf("facing = %v, want right after scrolling down", v.Facing)
	}
	want := systems.MascotX(600, g.Page().MaxOffset(), g.Page().ViewportWidth(), 75, 150)
	if math.Abs(v.X-want) > 1e-9 {
		t.Errorf("x = %f, want %f", v.X, want)
	}
	if g.Mascot().Stats().RunStarts == 0 {
		t.Error("expected a run while easing")
	}

	requested, flushed := g.throttle.Counts()
	if flushed == 0 || flushed > requested {
		t.Errorf("throttle counts = (%d, %d), want 0 < flushed <= requested", requested, flushed)
	}
}

func TestSingleNotchMakesMascotRun(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		facing systems.Facing
	}{
		{"notch down", 1, systems.FacingRight},
		{"notch up", -1, systems.FacingLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, Options{Seed: 1})
			if tt.scroll < 0 {
				g.Step(FrameInput{ScrollTo: g.Page().MaxOffset() / 2, SetScroll: true})
				for i := 0; i < 120; i++ {
					g.Step(FrameInput{})
				}
			}
			before := g.Mascot().Stats()

			g.Step(FrameInput{ScrollBy: tt.scroll * g.cfg.Page.ScrollStep})
			ran := false
			for i := 0; i < 60; i++ {
				g.Step(FrameInput{})
				v := g.Mascot().View()
				if v.Motion == systems.MotionRunning {
					ran = true
					if v.Facing != tt.facing {
						t.Errorf("facing = %v, want %v", v.Facing, tt.facing)
					}
				}
			}

			after := g.Mascot().Stats()
			if !ran {
				t.Fatal("one scroll step never made the mascot run")
			}
			if after.RunStarts-before.RunStarts != 1 {
				t.Errorf("run starts = %d, want 1", after.RunStarts-before.RunStarts)
			}
			if after.Messages == before.Messages {
				t.Error("expected a section message while running")
			}
		})
	}
}

func TestScrollToEnd(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	g.Step(FrameInput{ScrollTo: g.Page().Height(), SetScroll: true})
	for i := 0; i < 240; i++ {
		g.Step(FrameInput{})
	}

	if g.Page().Offset() != g.Page().MaxOffset() {
		t.Fatalf("offset = %f, want max %f", g.Page().Offset(), g.Page().MaxOffset())
	}
	want := g.Page().ViewportWidth() - 150
	if math.Abs(g.Mascot().View().X-want) > 1e-9 {
		t.Errorf("x at bottom = %f, want %f", g.Mascot().View().X, want)
	}
}

func TestPointerIsCoalesced(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	g.Step(FrameInput{Mouse: components.Position{X: 100, Y: 100}, Moved: true})
	if g.Trail().Mouse() != (components.Position{}) {
		t.Error("pointer applied before the coalescing delay")
	}

	g.Step(FrameInput{Mouse: components.Position{X: 200, Y: 100}, Moved: true})
	if got := g.Trail().Mouse(); got != (components.Position{X: 100, Y: 100}) {
		t.Errorf("mouse = %v, want the held sample (100, 100)", got)
	}
}

func TestThemeToggleKeepsParticleColors(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, Options{Seed: 1, Config: cfg})
	dark := cfg.Palette(true).Accent
	light := cfg.Palette(false).Accent

	g.Step(FrameInput{Mouse: components.Position{X: 100, Y: 100}, Moved: true})
	g.Step(FrameInput{Mouse: components.Position{X: 200, Y: 100}, Moved: true})
	if g.Trail().Count() == 0 {
		t.Fatal("expected particles after pointer movement")
	}
	before := g.Trail().Count()

	g.ToggleTheme()
	g.Step(FrameInput{Mouse: components.Position{X: 300, Y: 100}, Moved: true})

	ps := g.Trail().Particles
	if len(ps) <= before {
		t.Fatal("expected new particles after the theme change")
	}
	if ps[0].Color != dark {
		t.Errorf("old particle color = %v, want dark accent %v", ps[0].Color, dark)
	}
	if ps[len(ps)-1].Color != light {
		t.Errorf("new particle color = %v, want light accent %v", ps[len(ps)-1].Color, light)
	}
	if g.Palette().Accent != light {
		t.Error("active palette did not switch")
	}
}

func TestSetupFailsOnMissingSection(t *testing.T) {
	cfg := testConfig(t)
	var kept []config.SectionConfig
	for _, s := range cfg.Page.Sections {
		if s.ID != "skills" {
			kept = append(kept, s)
		}
	}
	cfg.Page.Sections = kept

	if _, err := NewGameWithOptions(Options{Config: cfg, Headless: true}); err == nil {
		t.Fatal("expected setup error when a tracked section is missing")
	}
}

func TestOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g := newTestGame(t, Options{Seed: 1, OutputDir: dir, StatsWindowSec: 1})

	for g.Tick() < 120 {
		g.UpdateHeadless()
	}
	g.Unload()

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("telemetry.csv has %d lines, want header + 2 windows", len(lines))
	}
}
