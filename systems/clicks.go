package systems

import (
	"time"

	"github.com/pthm-cable/folio/components"
)

// DoubleClickDetector pairs consecutive presses into double-clicks.
type DoubleClickDetector struct {
	threshold time.Duration
	distance  float64

	has  bool
	last time.Duration
	pos  components.Position
}

// NewDoubleClickDetector creates a detector. Two presses count as a
// double-click when they are at most threshold apart in time and distance
// apart in pixels.
func NewDoubleClickDetector(threshold time.Duration, distance float64) *DoubleClickDetector {
	return &DoubleClickDetector{threshold: threshold, distance: distance}
}

// Press records a button press and reports whether it completes a double-click.
// A completed pair is consumed, so a third quick press starts a new pair.
func (d *DoubleClickDetector) Press(p components.Position, now time.Duration) bool {
	if d.has && now-d.last <= d.threshold {
		dx := p.X - d.pos.X
		dy := p.Y - d.pos.Y
		if dx*dx+dy*dy <= d.distance*d.distance {
			d.has = false
			return true
		}
	}
	d.has = true
	d.last = now
	d.pos = p
	return false
}
