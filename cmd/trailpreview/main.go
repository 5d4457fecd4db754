// Trail preview tool - tune the pointer trail interactively with sliders.
//
// Usage: go run ./cmd/trailpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewSize  = 680
	panelWidth   = windowWidth - previewSize - 30
)

// slider describes one tunable trail parameter.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(p *systems.TrailParams) float32
	set      func(p *systems.TrailParams, v float32)
}

var sliders = []slider{
	{"Max particles (cap)", 10, 500, "%.0f",
		func(p *systems.TrailParams) float32 { return float32(p.MaxParticles) },
		func(p *systems.TrailParams, v float32) { p.MaxParticles = int(v) }},
	{"Max spawn per tick", 1, 10, "%.0f",
		func(p *systems.TrailParams) float32 { return float32(p.MaxSpawnPerTick) },
		func(p *systems.TrailParams, v float32) { p.MaxSpawnPerTick = int(v) }},
	{"Life step (fade per tick)", 0.005, 0.1, "%.3f",
		func(p *systems.TrailParams) float32 { return float32(p.LifeStep) },
		func(p *systems.TrailParams, v float32) { p.LifeStep = float64(v) }},
	{"Shrink step (size per tick)", 0, 0.2, "%.3f",
		func(p *systems.TrailParams) float32 { return float32(p.ShrinkStep) },
		func(p *systems.TrailParams, v float32) { p.ShrinkStep = float64(v) }},
	{"Min size", 0, 2, "%.2f",
		func(p *systems.TrailParams) float32 { return float32(p.MinSize) },
		func(p *systems.TrailParams, v float32) { p.MinSize = float64(v) }},
	{"Opacity", 0, 1, "%.2f",
		func(p *systems.TrailParams) float32 { return float32(p.Opacity) },
		func(p *systems.TrailParams, v float32) { p.Opacity = float64(v) }},
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := systems.TrailParamsFromConfig(cfg)
	params := defaults

	dark := cfg.Theme.Start == "dark"
	trail := systems.NewParticleSystem(params, func() rl.Color {
		return cfg.Palette(dark).Accent
	}, rand.New(rand.NewSource(1)))

	rl.InitWindow(windowWidth, windowHeight, "Trail Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	tr := renderer.NewTrailRenderer()

	autodraw := true
	var phase float64

	for !rl.WindowShouldClose() {
		pal := cfg.Palette(dark)

		// Pointer source: real mouse inside the preview, otherwise a figure eight
		mouse := rl.GetMousePosition()
		inPreview := mouse.X >= 10 && mouse.X < 10+previewSize && mouse.Y >= 10 && mouse.Y < 10+previewSize
		switch {
		case inPreview:
			trail.SetMouse(float64(mouse.X), float64(mouse.Y))
		case autodraw:
			phase += 0.03
			cx, cy, r := 10+previewSize/2.0, 10+previewSize/2.0, previewSize*0.35
			trail.SetMouse(cx+r*math.Sin(phase), cy+r*math.Sin(2*phase)/2)
		}
		trail.Tick()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawRectangle(10, 10, previewSize, previewSize, pal.Background)
		rl.BeginScissorMode(10, 10, previewSize, previewSize)
		tr.Draw(trail)
		rl.EndScissorMode()
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		stats := trail.Stats()
		statsY := int32(previewSize + 20)
		rl.DrawText(fmt.Sprintf("Live: %d / %d  Spawned: %d  Dropped: %d  Expired: %d",
			trail.Count(), params.MaxParticles, stats.Spawned, stats.Dropped, stats.Expired), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Trail Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed := false
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			cur := s.get(&params)
			next := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				cur, s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, cur), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if next != cur {
				s.set(&params, next)
				changed = true
			}
			panelY += 35
		}
		if changed {
			trail.SetParams(params)
		}

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(autodraw, "Stop Autodraw", "Autodraw")) {
			autodraw = !autodraw
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(dark, "Light Theme", "Dark Theme")) {
			dark = !dark
		}
		panelY += 45
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			trail.SetParams(params)
		}
		panelY += 55

		// Output YAML
		out := trailYAML(cfg.Trail, params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

// trailYAML renders params as the trail section of a config file, keeping the
// base values for fields the sliders do not cover.
func trailYAML(base config.TrailConfig, p systems.TrailParams) string {
	base.MaxParticles = p.MaxParticles
	base.MaxSpawnPerTick = p.MaxSpawnPerTick
	base.LifeStep = round(p.LifeStep, 3)
	base.ShrinkStep = round(p.ShrinkStep, 3)
	base.MinSize = round(p.MinSize, 2)
	base.Opacity = round(p.Opacity, 2)

	data, err := yaml.Marshal(map[string]config.TrailConfig{"trail": base})
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
