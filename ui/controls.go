package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBinding is a non-overlay control listed in the controls panel.
type KeyBinding struct {
	KeyLabel string
	Action   string
}

// Bindings lists the fixed page controls.
var Bindings = []KeyBinding{
	{"Wheel / Up / Down", "Scroll"},
	{"PgUp / PgDn", "Scroll one screen"},
	{"Home / End", "Jump to top / bottom"},
	{"Double-click mascot", "Shadow clone"},
	{"T", "Toggle light / dark theme"},
	{"F11", "Toggle fullscreen"},
}

// ControlsPanel renders key bindings and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Width returns the panel width.
func (c *ControlsPanel) Width() int32 {
	return c.width
}

// SetTheme restyles the panel.
func (c *ControlsPanel) SetTheme(t Theme) {
	c.renderer.Theme = t
}

// Height returns the panel height for the given overlays.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	lines := int32(len(Bindings)) + 1 // Bindings plus their header
	for _, cat := range overlays.Categories() {
		lines += int32(len(overlays.ByCategory(cat))) + 1
	}
	return lines*t.LineHeight + t.Padding*3 + t.LineHeight + 4*int32(len(overlays.Categories())+1)
}

// Draw renders the panel and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	inner := c.width - padding*2

	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays))

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, r.Theme.ValueColor)
	y += lineHeight + 4

	y = r.DrawSectionHeader(c.x+padding, y, "Page")
	for _, b := range Bindings {
		c.drawKey(c.x+padding, y, b.Action, b.KeyLabel, r.Theme.LabelColor, inner)
		y += lineHeight
	}
	y += 4

	for _, category := range overlays.Categories() {
		y = r.DrawSectionHeader(c.x+padding, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), inner)
			y += lineHeight
		}
		y += 4
	}

	return y
}

func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := r.Theme.BarBg
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = r.Theme.BarFill
		nameColor = r.Theme.ValueColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	c.drawKey(x+14, y, desc.Name, desc.KeyLabel, nameColor, width-14)
}

// drawKey draws a name with its key label right aligned.
func (c *ControlsPanel) drawKey(x, y int32, name, key string, nameColor rl.Color, width int32) {
	r := c.renderer
	rl.DrawText(name, x, y, r.Theme.FontSize, nameColor)
	if key == "" {
		return
	}
	keyText := fmt.Sprintf("[%s]", key)
	keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
	rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, r.Theme.LabelColor)
}

func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
