package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/camera"
	"github.com/pthm-cable/folio/config"
)

const (
	titleFont     = 32
	bodyFont      = 16
	sectionMargin = 48
	cardRows      = 3
)

// PageRenderer draws the visible part of the page content.
type PageRenderer struct{}

// NewPageRenderer creates a page renderer.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

// Draw clears the window and draws each visible section as a titled band.
func (r *PageRenderer) Draw(page *camera.Page, pal config.Palette) {
	rl.ClearBackground(pal.Background)

	w := int32(page.ViewportW)
	for i, s := range page.Sections() {
		if !page.IsVisible(s) {
			continue
		}
		top := int32(s.Top - page.Offset())
		h := int32(s.Height)

		// Alternate band shading so section edges read clearly
		if i%2 == 1 {
			rl.DrawRectangle(0, top, w, h, pal.Surface)
		}
		rl.DrawLine(0, top, w, top, pal.Muted)

		title := s.Title
		if title == "" {
			title = s.ID
		}
		rl.DrawText(title, sectionMargin, top+sectionMargin, titleFont, pal.Text)
		rl.DrawRectangle(sectionMargin, top+sectionMargin+titleFont+8, 64, 4, pal.Accent)

		drawCards(sectionMargin, top+sectionMargin+titleFont+32, w-2*sectionMargin, h-2*sectionMargin-titleFont-32, pal)
	}

	// Scroll indicator along the right edge
	if maxOff := page.MaxOffset(); maxOff > 0 {
		vh := float64(page.ViewportH)
		thumbH := vh * vh / page.Height()
		thumbY := page.Offset() / maxOff * (vh - thumbH)
		rl.DrawRectangle(w-6, int32(thumbY), 4, int32(thumbH), pal.Muted)
	}
}

// drawCards fills a section body with placeholder content rows.
func drawCards(x, y, width, height int32, pal config.Palette) {
	if height <= 0 || width <= 0 {
		return
	}
	rowH := height / cardRows
	for i := int32(0); i < cardRows; i++ {
		ry := y + i*rowH
		rect := rl.Rectangle{X: float32(x), Y: float32(ry), Width: float32(width), Height: float32(rowH - 16)}
		if rect.Height <= 0 {
			return
		}
		rl.DrawRectangleRoundedLinesEx(rect, 0.05, 6, 1, pal.Muted)
		rl.DrawRectangle(x+16, ry+16, width/3, bodyFont/2, pal.Muted)
		rl.DrawRectangle(x+16, ry+16+bodyFont, width/2, bodyFont/2, pal.Muted)
	}
}
