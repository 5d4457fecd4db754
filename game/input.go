package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/components"
)

// FrameInput is the pointer and scroll input for one frame.
type FrameInput struct {
	Mouse   components.Position
	Moved   bool // Pointer moved since last frame
	Pressed bool // Left button went down this frame

	ScrollBy  float64 // Relative scroll in pixels
	ScrollTo  float64 // Absolute scroll target, used when SetScroll is true
	SetScroll bool
}

// frameDuration returns the last frame time from raylib.
func frameDuration() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}

// handleInput polls raylib, applies window-level toggles and returns the
// page input for this frame.
func (g *Game) handleInput() FrameInput {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.ToggleTheme()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", on)
		}
	}

	var in FrameInput

	mp := rl.GetMousePosition()
	in.Mouse = components.Position{X: float64(mp.X), Y: float64(mp.Y)}
	in.Moved = in.Mouse != g.lastMouse
	g.lastMouse = in.Mouse
	in.Pressed = rl.IsMouseButtonPressed(rl.MouseButtonLeft)

	g.handleScrollInput(&in)
	return in
}

// handleScrollInput maps wheel and keyboard scrolling onto the frame input.
func (g *Game) handleScrollInput(in *FrameInput) {
	step := g.cfg.Page.ScrollStep
	screen := g.page.ViewportHeight() * 0.9

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		in.ScrollBy -= float64(wheel) * step
	}
	if keyPressed(rl.KeyDown) {
		in.ScrollBy += step
	}
	if keyPressed(rl.KeyUp) {
		in.ScrollBy -= step
	}
	if keyPressed(rl.KeyPageDown) || keyPressed(rl.KeySpace) {
		in.ScrollBy += screen
	}
	if keyPressed(rl.KeyPageUp) {
		in.ScrollBy -= screen
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		in.ScrollTo, in.SetScroll = 0, true
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		in.ScrollTo, in.SetScroll = g.page.Height(), true
	}
}

func keyPressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	g.resize(w, h)
}

func (g *Game) resize(w, h float32) {
	if w == g.page.ViewportW && h == g.page.ViewportH {
		return
	}
	g.page.Resize(w, h)
	if g.perfPanel != nil {
		g.perfPanel.SetPosition(int32(w)-250, 20)
	}
	// Layout changed, so the mascot position is stale
	g.throttle.Request()
}

// applyInput feeds one frame of input to the coalescer, click detector and page.
// A held pointer sample is applied before new moves are offered.
func (g *Game) applyInput(in FrameInput) {
	if x, y, ok := g.pointer.Poll(g.now); ok {
		g.trail.SetMouse(x, y)
	}
	if in.Moved {
		g.pointer.Offer(in.Mouse.X, in.Mouse.Y, g.now)
	}

	if in.Pressed && g.clicks.Press(in.Mouse, g.now) && g.MascotBounds().Contains(in.Mouse) {
		if g.mascot.TriggerClone() {
			slog.Debug("shadow clone", "tick", g.tick)
		}
	}

	if in.SetScroll {
		g.page.ScrollTo(in.ScrollTo)
	}
	if in.ScrollBy != 0 {
		g.page.ScrollBy(in.ScrollBy)
	}
}
