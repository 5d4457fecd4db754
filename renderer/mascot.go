package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/systems"
)

// Mascot figure geometry in pixels.
const (
	mascotWidth   = 40
	mascotHeight  = 64
	mascotGround  = 24 // Gap between feet and the window bottom
	bubbleFont    = 16
	bubblePadding = 8
	bubbleGap     = 10
	runBobHeight  = 3
	runBobSpeed   = 0.5
	pulseScale    = 1.15
)

// MascotBounds returns the mascot hit box in window coordinates.
// X is the left edge of the figure.
func MascotBounds(v systems.MascotView, viewportH float64) components.Rect {
	return components.Rect{
		X:      v.X,
		Y:      viewportH - mascotGround - mascotHeight,
		Width:  mascotWidth,
		Height: mascotHeight,
	}
}

// MascotRenderer draws the scroll mascot, its speech bubble and its shadow clone.
type MascotRenderer struct {
	frame int
}

// NewMascotRenderer creates a mascot renderer.
func NewMascotRenderer() *MascotRenderer {
	return &MascotRenderer{}
}

// Draw renders the mascot for the current frame.
func (r *MascotRenderer) Draw(v systems.MascotView, viewportH float64, pal config.Palette) {
	r.frame++
	box := MascotBounds(v, viewportH)

	var bob float64
	if v.Motion == systems.MotionRunning {
		bob = math.Abs(math.Sin(float64(r.frame)*runBobSpeed)) * runBobHeight
	}

	// Clone trails behind the facing direction
	if v.CloneOpacity > 0.01 {
		ghost := box.Translate(-float64(v.Facing)*v.CloneOffset, 0)
		drawFigure(ghost, 0, v.Facing, pal, v.CloneOpacity*0.6)
	}

	drawFigure(box.Translate(0, -bob), r.frame, v.Facing, pal, 1)
	drawBubble(box, v, pal)
}

func drawFigure(box components.Rect, frame int, facing systems.Facing, pal config.Palette, alpha float64) {
	body := fade(pal.Text, alpha)
	accent := fade(pal.Accent, alpha)
	skin := fade(color.RGBA{R: 255, G: 214, B: 170, A: 255}, alpha)

	x, y := float32(box.X), float32(box.Y)
	w, h := float32(box.Width), float32(box.Height)
	headR := w * 0.4
	headCX := x + w/2
	headCY := y + headR

	// Legs alternate when frame advances; a still frame keeps them together
	stride := float32(0)
	if frame > 0 {
		stride = float32(math.Sin(float64(frame)*runBobSpeed)) * 4
	}
	legTop := y + h*0.72
	rl.DrawRectangleV(rl.Vector2{X: x + w*0.25 - stride, Y: legTop}, rl.Vector2{X: w * 0.18, Y: h * 0.28}, body)
	rl.DrawRectangleV(rl.Vector2{X: x + w*0.57 + stride, Y: legTop}, rl.Vector2{X: w * 0.18, Y: h * 0.28}, body)

	torso := rl.Rectangle{X: x + w*0.15, Y: headCY + headR*0.8, Width: w * 0.7, Height: legTop - (headCY + headR*0.8)}
	rl.DrawRectangleRounded(torso, 0.4, 6, accent)

	rl.DrawCircleV(rl.Vector2{X: headCX, Y: headCY}, headR, skin)

	// Headband with a tail streaming away from the facing direction
	band := rl.Rectangle{X: headCX - headR, Y: headCY - headR*0.55, Width: headR * 2, Height: headR * 0.35}
	rl.DrawRectangleRec(band, accent)
	tailX := headCX - float32(facing)*(headR+6)
	rl.DrawLineEx(rl.Vector2{X: headCX - float32(facing)*headR, Y: band.Y + band.Height/2},
		rl.Vector2{X: tailX, Y: band.Y + band.Height}, 2, accent)

	eyeX := headCX + float32(facing)*headR*0.35
	rl.DrawCircleV(rl.Vector2{X: eyeX, Y: headCY + headR*0.1}, 2, body)
}

func drawBubble(box components.Rect, v systems.MascotView, pal config.Palette) {
	if v.Message == "" {
		return
	}

	font := int32(bubbleFont)
	if v.Enthusiastic {
		font = int32(math.Round(bubbleFont * pulseScale))
	}
	textW := rl.MeasureText(v.Message, font)

	bw := float32(textW + 2*bubblePadding)
	bh := float32(font + 2*bubblePadding)
	bx := float32(box.X+box.Width/2) - bw/2
	by := float32(box.Y) - bubbleGap - bh

	// Keep the bubble on screen
	if bx < 4 {
		bx = 4
	}
	if maxX := float32(rl.GetScreenWidth()) - bw - 4; bx > maxX {
		bx = maxX
	}

	rect := rl.Rectangle{X: bx, Y: by, Width: bw, Height: bh}
	rl.DrawRectangleRounded(rect, 0.3, 8, pal.Surface)
	rl.DrawRectangleRoundedLinesEx(rect, 0.3, 8, 1, pal.Muted)

	tip := float32(box.X + box.Width/2)
	rl.DrawTriangle(
		rl.Vector2{X: tip - 6, Y: by + bh},
		rl.Vector2{X: tip, Y: by + bh + 8},
		rl.Vector2{X: tip + 6, Y: by + bh},
		pal.Surface,
	)

	rl.DrawText(v.Message, int32(bx)+bubblePadding, int32(by)+bubblePadding, font, pal.Text)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(float64(c.A) * clamp01(alpha))
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
