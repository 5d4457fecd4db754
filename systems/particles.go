package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
)

// TrailParticle is a single fading dot left behind by the pointer.
type TrailParticle struct {
	Pos   components.Position
	Vel   components.Velocity
	Size  float64
	Life  float64 // 1 at birth, removed once <= 0
	Color color.RGBA
}

// TrailParams holds the tunable per-tick constants of the trail.
type TrailParams struct {
	MaxParticles    int
	MaxSpawnPerTick int
	LifeStep        float64
	ShrinkStep      float64
	MinSize         float64
	Opacity         float64
}

// TrailParamsFromConfig returns trail params from the loaded config.
func TrailParamsFromConfig(cfg *config.Config) TrailParams {
	return TrailParams{
		MaxParticles:    cfg.Trail.MaxParticles,
		MaxSpawnPerTick: cfg.Trail.MaxSpawnPerTick,
		LifeStep:        cfg.Trail.LifeStep,
		ShrinkStep:      cfg.Trail.ShrinkStep,
		MinSize:         cfg.Trail.MinSize,
		Opacity:         cfg.Trail.Opacity,
	}
}

// ColorSource yields the current theme accent. It is sampled once per particle.
type ColorSource func() color.RGBA

// TrailStats counts lifetime events of the trail.
type TrailStats struct {
	Spawned int
	Dropped int // Spawns suppressed by the cap
	Expired int
}

// ParticleSystem owns the pointer trail. Particles are kept in insertion order,
// which is also draw order.
type ParticleSystem struct {
	Particles []TrailParticle

	mouse components.Position
	last  components.Position

	params TrailParams
	color  ColorSource
	rng    *rand.Rand
	stats  TrailStats
}

// NewParticleSystem creates a trail with the given params.
func NewParticleSystem(params TrailParams, colors ColorSource, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]TrailParticle, 0, params.MaxParticles),
		params:    params,
		color:     colors,
		rng:       rng,
	}
}

// SetMouse records the latest pointer sample.
func (s *ParticleSystem) SetMouse(x, y float64) {
	s.mouse = components.Position{X: x, Y: y}
}

// Mouse returns the latest pointer sample.
func (s *ParticleSystem) Mouse() components.Position {
	return s.mouse
}

// SetParams replaces the trail constants. Existing particles are kept even if
// the new cap is lower.
func (s *ParticleSystem) SetParams(params TrailParams) {
	s.params = params
}

// Params returns the current trail constants.
func (s *ParticleSystem) Params() TrailParams {
	return s.params
}

// Tick runs one spawn pass followed by one update pass.
func (s *ParticleSystem) Tick() {
	s.Spawn()
	s.Update()
}

// Spawn interpolates new particles along the segment from the last sample to
// the current one and returns how many were added.
func (s *ParticleSystem) Spawn() int {
	dx := s.mouse.X - s.last.X
	dy := s.mouse.Y - s.last.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	n := int(math.Floor(distance))
	if n > s.params.MaxSpawnPerTick {
		n = s.params.MaxSpawnPerTick
	}

	added := 0
	for i := 0; i < n; i++ {
		if len(s.Particles) >= s.params.MaxParticles {
			s.stats.Dropped++
			continue
		}
		t := float64(i) / float64(n)
		s.Particles = append(s.Particles, s.newParticle(s.last.X+dx*t, s.last.Y+dy*t))
		added++
	}
	s.stats.Spawned += added

	s.last = s.mouse
	return added
}

func (s *ParticleSystem) newParticle(x, y float64) TrailParticle {
	return TrailParticle{
		Pos:   components.Position{X: x, Y: y},
		Vel:   components.Velocity{X: s.rng.Float64()*2 - 1, Y: s.rng.Float64()*2 - 1},
		Size:  s.rng.Float64()*2 + 1,
		Life:  1,
		Color: s.color(),
	}
}

// Update ages every particle and drops the expired ones, keeping survivor order.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Life -= s.params.LifeStep
		if p.Size > s.params.MinSize {
			p.Size -= s.params.ShrinkStep
		}

		if p.Life <= 0 {
			s.stats.Expired++
			continue
		}
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// Alpha returns the draw opacity of p in [0, 1].
func (s *ParticleSystem) Alpha(p *TrailParticle) float64 {
	return p.Life * s.params.Opacity
}

// DrawColor returns the particle's creation color with its alpha channel set
// from Alpha, as straight (non-premultiplied) alpha.
func (s *ParticleSystem) DrawColor(p *TrailParticle) color.RGBA {
	a := s.Alpha(p)
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c := p.Color
	c.A = uint8(math.Round(a * 255))
	return c
}

// Count returns the current number of live particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Stats returns lifetime counters.
func (s *ParticleSystem) Stats() TrailStats {
	return s.stats
}
