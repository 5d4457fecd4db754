// Package game wires the page, trail and mascot into a per-frame loop that
// runs either in a raylib window or headless.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/folio/camera"
	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/ui"
)

// Game holds the complete overlay state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	// Page and input
	page     *camera.Page
	pointer  *systems.PointerCoalescer
	clicks   *systems.DoubleClickDetector
	throttle systems.ScrollThrottle

	// Trail and mascot
	trail  *systems.ParticleSystem
	sched  *systems.Scheduler
	mascot *systems.Mascot

	// Theme
	dark    bool
	palette config.Palette

	// Rendering (nil in headless mode)
	pageRenderer   *renderer.PageRenderer
	trailRenderer  *renderer.TrailRenderer
	mascotRenderer *renderer.MascotRenderer
	hud            *ui.HUD
	perfPanel      *ui.PerfPanel
	controls       *ui.ControlsPanel
	overlays       *ui.OverlayRegistry
	registry       *systems.SystemRegistry

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	// Synthetic input for headless runs
	autopilot *Autopilot

	// State
	tick      int32
	now       time.Duration // Frame clock
	dt        time.Duration // Fixed step used headless
	headless  bool
	lastMouse components.Position
}

// NewGameWithOptions creates a game. It fails when the page layout lacks a
// section the mascot tracks or its messages are incomplete.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		seed:          opts.Seed,
		dark:          cfg.Theme.Start == "dark",
		pointer:       systems.NewPointerCoalescer(cfg.Derived.CoalesceDelay),
		clicks:        systems.NewDoubleClickDetector(cfg.Derived.DoubleClick, cfg.Mascot.DoubleClickDistance),
		sched:         systems.NewScheduler(),
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		dt:            time.Second / time.Duration(fps),
	}
	g.palette = cfg.Palette(g.dark)

	g.page = camera.New(
		float32(cfg.Screen.Width), float32(cfg.Screen.Height),
		cfg.Page.Sections, fps,
		cfg.Page.SpringFrequency, cfg.Page.SpringDamping,
	)

	// Particles sample the accent of whichever theme is active when they spawn
	g.trail = systems.NewParticleSystem(systems.TrailParamsFromConfig(cfg), func() color.RGBA {
		return g.palette.Accent
	}, g.rng)

	detector, err := systems.NewSectionDetector(cfg.Mascot.Sections, g.page, cfg.Mascot.BandTop, cfg.Mascot.BandBottom)
	if err != nil {
		return nil, fmt.Errorf("setting up section detection: %w", err)
	}
	g.mascot, err = systems.NewMascot(systems.MascotParamsFromConfig(cfg), detector, cfg.Mascot.Messages, g.sched, g.rng)
	if err != nil {
		return nil, fmt.Errorf("setting up mascot: %w", err)
	}
	g.mascot.Reset(g.page)

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, 1.0/float64(fps))
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.perf.SetBudget(g.dt)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if g.headless {
		g.autopilot = NewAutopilot(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Page.ScrollStep)
	} else {
		g.pageRenderer = renderer.NewPageRenderer()
		g.trailRenderer = renderer.NewTrailRenderer()
		g.mascotRenderer = renderer.NewMascotRenderer()
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(cfg.Screen.Width)-250, 20)
		g.controls = ui.NewControlsPanel(0, 0, 320)
		g.overlays = ui.NewOverlayRegistry()
		g.registry = systems.NewSystemRegistry()
		g.applyTheme()
	}

	slog.Info("game initialized",
		"seed", opts.Seed,
		"headless", g.headless,
		"sections", len(g.page.Sections()),
		"page_height", g.page.Height(),
		"theme", g.themeName(),
	)

	return g, nil
}

// Update processes window input and advances one frame.
func (g *Game) Update() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	in := g.handleInput()
	g.advance(in, frameDuration())
}

// UpdateHeadless advances one fixed-step frame driven by the autopilot.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	in := g.autopilot.Next(g.tick, g.page, g.MascotBounds())
	g.advance(in, g.dt)
	g.perf.EndTick()
}

// Step advances one fixed-step frame with the given input.
func (g *Game) Step(in FrameInput) {
	g.perf.StartTick()
	g.advance(in, g.dt)
	g.perf.EndTick()
}

// advance runs one frame: due timers, input, scroll, trail spawn then
// update, and the mascot animation.
func (g *Game) advance(in FrameInput, dt time.Duration) {
	g.now += dt

	g.perf.StartPhase(telemetry.PhaseTimers)
	g.sched.Advance(g.now)

	g.perf.StartPhase(telemetry.PhaseInput)
	g.applyInput(in)

	g.perf.StartPhase(telemetry.PhaseScroll)
	if g.page.Update() {
		g.throttle.Request()
	}
	g.throttle.Flush(g.recompute)

	g.perf.StartPhase(telemetry.PhaseSpawn)
	g.trail.Spawn()

	g.perf.StartPhase(telemetry.PhaseUpdate)
	g.trail.Update()

	g.perf.StartPhase(telemetry.PhaseMascot)
	g.mascot.Animate()

	g.collector.RecordFrame(g.trail.Count(), g.mascot.View().Motion == systems.MotionRunning)
	g.tick++
	g.flushTelemetry()
}

// recompute is the throttled scroll handler.
func (g *Game) recompute() {
	g.mascot.OnScroll(g.page)
}

// ToggleTheme switches between the light and dark palettes. Live particles
// keep the color they were created with.
func (g *Game) ToggleTheme() {
	g.dark = !g.dark
	g.palette = g.cfg.Palette(g.dark)
	g.applyTheme()
	slog.Debug("theme changed", "theme", g.themeName())
}

func (g *Game) applyTheme() {
	if g.hud == nil {
		return
	}
	t := ui.ThemeFromPalette(g.palette)
	g.hud.SetTheme(t)
	g.perfPanel.SetTheme(t)
	g.controls.SetTheme(t)
}

func (g *Game) themeName() string {
	if g.dark {
		return "dark"
	}
	return "light"
}

// MascotBounds returns the mascot hit box in window coordinates.
func (g *Game) MascotBounds() components.Rect {
	return renderer.MascotBounds(g.mascot.View(), g.page.ViewportHeight())
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

// Tick returns the number of frames run.
func (g *Game) Tick() int32 {
	return g.tick
}

// Now returns the frame clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Page returns the page viewport.
func (g *Game) Page() *camera.Page {
	return g.page
}

// Trail returns the particle trail.
func (g *Game) Trail() *systems.ParticleSystem {
	return g.trail
}

// Mascot returns the mascot controller.
func (g *Game) Mascot() *systems.Mascot {
	return g.mascot
}

// Palette returns the active palette.
func (g *Game) Palette() config.Palette {
	return g.palette
}
