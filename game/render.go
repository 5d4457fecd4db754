package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/telemetry"
)

// Draw renders the page, mascot and trail, then any debug overlays.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	g.pageRenderer.Draw(g.page, g.palette)
	g.mascotRenderer.Draw(g.mascot.View(), g.page.ViewportHeight(), g.palette)
	g.trailRenderer.Draw(g.trail)
	g.drawActiveOverlays()
	rl.EndDrawing()

	g.perf.EndTick()
	g.perf.RecordFrame()
}
