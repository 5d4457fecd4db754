package systems

import (
	"fmt"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
)

// SectionLocator reports where named page sections currently sit, relative to
// the top of the viewport.
type SectionLocator interface {
	SectionBounds(id string) (components.Rect, bool)
	ViewportHeight() float64
}

// SectionDetector finds which tracked section is centered in the viewport.
type SectionDetector struct {
	order      []string
	locator    SectionLocator
	bandTop    float64
	bandBottom float64
}

// NewSectionDetector checks that every tracked section exists on the page.
// A missing section fails setup.
func NewSectionDetector(order []string, locator SectionLocator, bandTop, bandBottom float64) (*SectionDetector, error) {
	for _, id := range order {
		if _, ok := locator.SectionBounds(id); !ok {
			return nil, fmt.Errorf("section %q not found on page", id)
		}
	}
	return &SectionDetector{
		order:      append([]string(nil), order...),
		locator:    locator,
		bandTop:    bandTop,
		bandBottom: bandBottom,
	}, nil
}

// Current returns the first tracked section whose box overlaps the middle
// band of the viewport, or config.DefaultSection when none does.
func (d *SectionDetector) Current() string {
	vh := d.locator.ViewportHeight()
	top := vh * d.bandTop
	bottom := vh * d.bandBottom
	for _, id := range d.order {
		r, ok := d.locator.SectionBounds(id)
		if !ok {
			continue
		}
		if r.Top() < bottom && r.Bottom() > top {
			return id
		}
	}
	return config.DefaultSection
}
