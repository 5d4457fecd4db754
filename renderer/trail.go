package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/systems"
)

// TrailRenderer draws the pointer trail over the page.
type TrailRenderer struct{}

// NewTrailRenderer creates a trail renderer.
func NewTrailRenderer() *TrailRenderer {
	return &TrailRenderer{}
}

// Draw renders every live particle in draw order, straight to the current
// frame. It must run after the page and mascot so the trail sits on top; the
// frame clear leaves nothing from the previous frame.
func (r *TrailRenderer) Draw(trail *systems.ParticleSystem) {
	for i := range trail.Particles {
		p := &trail.Particles[i]
		rl.DrawCircleV(rl.Vector2{X: float32(p.Pos.X), Y: float32(p.Pos.Y)}, float32(p.Size), trail.DrawColor(p))
	}
}
