// Package camera provides the scrollable page viewport.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
)

// scrollEpsilon is the distance at which smooth scrolling snaps to its target.
const scrollEpsilon = 0.05

// Section is one laid-out block of the page, in page coordinates.
type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
}

// Page is a vertical stack of sections seen through a window-sized viewport.
// Offset follows the scroll target through a spring, like smooth scrolling.
type Page struct {
	// Viewport dimensions (window size)
	ViewportW, ViewportH float32

	sections []Section
	byID     map[string]int
	height   float64

	offset   float64
	reported float64 // offset at the last Update
	vel      float64
	target   float64
	spring   harmonica.Spring
	smooth   bool
}

// New lays out sections top to bottom. With frequency <= 0 scrolling is instant.
func New(viewportW, viewportH float32, sections []config.SectionConfig, fps int, frequency, damping float64) *Page {
	p := &Page{
		ViewportW: viewportW,
		ViewportH: viewportH,
		byID:      make(map[string]int, len(sections)),
	}
	for _, s := range sections {
		p.byID[s.ID] = len(p.sections)
		p.sections = append(p.sections, Section{ID: s.ID, Title: s.Title, Top: p.height, Height: s.Height})
		p.height += s.Height
	}
	if frequency > 0 {
		if fps <= 0 {
			fps = 60
		}
		p.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
		p.smooth = true
	}
	return p
}

// Height returns the total content height.
func (p *Page) Height() float64 {
	return p.height
}

// Sections returns the laid-out sections in page order.
func (p *Page) Sections() []Section {
	return p.sections
}

// Offset returns the current scroll offset.
func (p *Page) Offset() float64 {
	return p.offset
}

// Target returns where the offset is heading.
func (p *Page) Target() float64 {
	return p.target
}

// MaxOffset returns the largest reachable offset. It is zero or negative when
// the content fits in the viewport.
func (p *Page) MaxOffset() float64 {
	return p.height - float64(p.ViewportH)
}

// ViewportWidth returns the window width.
func (p *Page) ViewportWidth() float64 {
	return float64(p.ViewportW)
}

// ViewportHeight returns the window height.
func (p *Page) ViewportHeight() float64 {
	return float64(p.ViewportH)
}

// ScrollBy moves the scroll target by dy pixels.
func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.target + dy)
}

// ScrollTo sets the scroll target, clamped to the page.
func (p *Page) ScrollTo(y float64) {
	p.target = p.clamp(y)
	if !p.smooth {
		p.offset = p.target
	}
}

// Update advances smooth scrolling by one frame and reports whether the offset
// changed, which is what raises a scroll event.
func (p *Page) Update() bool {
	if p.smooth && p.offset != p.target {
		p.offset, p.vel = p.spring.Update(p.offset, p.vel, p.target)
		if math.Abs(p.offset-p.target) < scrollEpsilon && math.Abs(p.vel) < scrollEpsilon {
			p.offset, p.vel = p.target, 0
		}
		p.offset = p.clamp(p.offset)
	}
	moved := p.offset != p.reported
	p.reported = p.offset
	return moved
}

// Resize updates the viewport and re-clamps the scroll state.
func (p *Page) Resize(w, h float32) {
	p.ViewportW = w
	p.ViewportH = h
	p.target = p.clamp(p.target)
	p.offset = p.clamp(p.offset)
}

// SectionBounds returns the section rect relative to the viewport top, the
// way a browser reports a bounding client rect.
func (p *Page) SectionBounds(id string) (components.Rect, bool) {
	i, ok := p.byID[id]
	if !ok {
		return components.Rect{}, false
	}
	s := p.sections[i]
	return components.Rect{X: 0, Y: s.Top - p.offset, Width: float64(p.ViewportW), Height: s.Height}, true
}

// IsVisible reports whether a section overlaps the viewport.
func (p *Page) IsVisible(s Section) bool {
	top := s.Top - p.offset
	return top < float64(p.ViewportH) && top+s.Height > 0
}

func (p *Page) clamp(y float64) float64 {
	maxOff := p.MaxOffset()
	if maxOff < 0 {
		maxOff = 0
	}
	if y < 0 {
		return 0
	}
	if y > maxOff {
		return maxOff
	}
	return y
}
