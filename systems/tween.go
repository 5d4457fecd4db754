package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close a tween must be to its target, with negligible
// velocity, before it snaps.
const settleEpsilon = 0.001

// Tween eases a scalar toward a target with a critically damped spring.
type Tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewTween creates a tween at rest at start.
func NewTween(fps int, frequency, damping, start float64) Tween {
	return Tween{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    start,
		target: start,
	}
}

// SetTarget changes where the tween is heading.
func (t *Tween) SetTarget(v float64) {
	t.target = v
}

// Target returns the current target.
func (t *Tween) Target() float64 {
	return t.target
}

// Value returns the current eased value.
func (t *Tween) Value() float64 {
	return t.pos
}

// Step advances the spring by one frame and returns the new value.
func (t *Tween) Step() float64 {
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
		t.pos, t.vel = t.target, 0
	}
	return t.pos
}

// Settled reports whether the tween has reached its target.
func (t *Tween) Settled() bool {
	return t.pos == t.target && t.vel == 0
}
