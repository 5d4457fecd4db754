// Package ui provides a descriptor-driven debug UI for the overlay.
// Panels are described as sections of fields whose getters read from a data
// value, so new readouts are added without touching layout code.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
)

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText    WidgetType = iota // Plain text with format string
	WidgetBar                       // Progress bar [0, 1]
	WidgetSection                   // Section header
	WidgetSpacer                    // Vertical spacing
)

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID         string            // Unique identifier for the field
	Label      string            // Display label
	Widget     WidgetType        // How to render
	Format     string            // Printf format for numeric text (e.g., "%.2f")
	Visible    func(any) bool    // Optional visibility check (nil = always visible)
	Getter     func(any) float32 // Value extractor (for numeric fields)
	TextGetter func(any) string  // Value extractor (for text fields)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Warn           rl.Color
	Hot            rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the dark UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 13, G: 17, B: 23, A: 230},
		PanelBorder:    rl.Color{R: 48, G: 54, B: 61, A: 255},
		SectionHeader:  rl.Color{R: 88, G: 166, B: 255, A: 255},
		LabelColor:     rl.Color{R: 139, G: 148, B: 158, A: 255},
		ValueColor:     rl.Color{R: 201, G: 209, B: 217, A: 255},
		BarBg:          rl.Color{R: 33, G: 38, B: 45, A: 255},
		BarFill:        rl.Color{R: 88, G: 166, B: 255, A: 255},
		Warn:           rl.Orange,
		Hot:            rl.Red,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// ThemeFromPalette derives the UI theme from the page palette so the HUD
// follows the light/dark toggle.
func ThemeFromPalette(p config.Palette) Theme {
	t := DefaultTheme()
	bg := p.Surface
	bg.A = 230
	t.PanelBg = bg
	t.PanelBorder = p.Muted
	t.SectionHeader = p.Accent
	t.LabelColor = p.Muted
	t.ValueColor = p.Text
	t.BarBg = p.Background
	t.BarFill = p.Accent
	return t
}
