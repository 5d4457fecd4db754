package game

import (
	"math"

	"github.com/pthm-cable/folio/camera"
	"github.com/pthm-cable/folio/components"
)

// Autopilot timing in frames.
const (
	scrollPeriod   = 90  // A burst of wheel notches starts every scrollPeriod frames
	scrollBurst    = 8   // Notches per burst, one per frame
	clickPeriod    = 300 // A double-click on the mascot every clickPeriod frames
	clickGap       = 6   // Frames between the two presses
	pointerSpeedX  = 0.7
	pointerSpeedY  = 1.1
	pointerExtentX = 0.35
	pointerExtentY = 0.3
)

// Autopilot produces deterministic synthetic input for headless runs: the
// pointer traces a Lissajous curve, the page is scrolled back and forth in
// wheel bursts, and the mascot is double-clicked periodically.
type Autopilot struct {
	width, height float64
	step          float64
	dir           float64
	clickAt       components.Position
}

// NewAutopilot creates an autopilot for a viewport of the given size.
func NewAutopilot(width, height, scrollStep float64) *Autopilot {
	return &Autopilot{width: width, height: height, step: scrollStep, dir: 1}
}

// Next returns the input for frame tick.
func (a *Autopilot) Next(tick int32, page *camera.Page, mascot components.Rect) FrameInput {
	t := float64(tick) / 60
	in := FrameInput{
		Mouse: components.Position{
			X: a.width/2 + a.width*pointerExtentX*math.Sin(t*pointerSpeedX),
			Y: a.height/2 + a.height*pointerExtentY*math.Sin(t*pointerSpeedY),
		},
		Moved: true,
	}

	if tick%scrollPeriod < scrollBurst {
		if a.dir > 0 && page.Target() >= page.MaxOffset() {
			a.dir = -1
		} else if a.dir < 0 && page.Target() <= 0 {
			a.dir = 1
		}
		in.ScrollBy = a.dir * a.step
	}

	// Both presses land on the point picked at the first one
	switch phase := tick % clickPeriod; {
	case tick > 0 && phase == 0:
		a.clickAt = components.Position{X: mascot.X + mascot.Width/2, Y: mascot.Y + mascot.Height/2}
		in.Mouse, in.Pressed = a.clickAt, true
	case tick > 0 && phase == clickGap:
		in.Mouse, in.Pressed = a.clickAt, true
	}

	return in
}
