package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/ui"
)

const controlsHint = "H: controls   D: debug   T: theme"

// drawActiveOverlays renders all currently enabled overlays.
func (g *Game) drawActiveOverlays() {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayHUD:
			g.hud.Draw(g.hudData())
		case ui.OverlayPerf:
			g.drawPerfPanel()
		case ui.OverlayHitBox:
			g.drawHitBoxes()
		case ui.OverlayHelp:
			g.drawControls()
		}
	}
	if len(g.overlays.EnabledOverlays()) == 0 {
		g.hud.DrawControls(int32(g.page.ViewportH), controlsHint)
	}
}

func (g *Game) hudData() ui.HUDData {
	v := g.mascot.View()
	ts := g.trail.Stats()
	return ui.HUDData{
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Particles:    g.trail.Count(),
		MaxParticles: g.trail.Params().MaxParticles,
		Spawned:      ts.Spawned,
		Dropped:      ts.Dropped,
		Motion:       v.Motion,
		Facing:       v.Facing,
		Jutsu:        v.Jutsu,
		Section:      v.Section,
		Message:      v.Message,
		Offset:       g.page.Offset(),
		MaxOffset:    g.page.MaxOffset(),
		Dark:         g.dark,
	}
}

func (g *Game) drawPerfPanel() {
	stats := g.perf.Stats()
	g.perfPanel.Draw(ui.PerfPanelData{
		SystemTimes: stats.PhaseAvg,
		Total:       stats.AvgTickDuration,
		Budget:      stats.Budget,
		OverBudget:  stats.OverBudget,
		Registry:    g.registry,
	}, g.registry.IDs())
}

// drawHitBoxes outlines the mascot hit box and the section detection band.
func (g *Game) drawHitBoxes() {
	box := g.MascotBounds()
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X: float32(box.X), Y: float32(box.Y), Width: float32(box.Width), Height: float32(box.Height),
	}, 1, rl.Magenta)

	vh := g.page.ViewportH
	w := int32(g.page.ViewportW)
	top := int32(vh * float32(g.cfg.Mascot.BandTop))
	bottom := int32(vh * float32(g.cfg.Mascot.BandBottom))
	band := g.palette.Accent
	band.A = 40
	rl.DrawRectangle(0, top, w, bottom-top, band)
	rl.DrawLine(0, top, w, top, g.palette.Accent)
	rl.DrawLine(0, bottom, w, bottom, g.palette.Accent)
}

// drawControls centers the controls panel in the window.
func (g *Game) drawControls() {
	h := g.controls.Height(g.overlays)
	x := (int32(g.page.ViewportW) - g.controls.Width()) / 2
	y := (int32(g.page.ViewportH) - h) / 2
	g.controls.SetPosition(x, y)
	g.controls.Draw(g.overlays)
}
