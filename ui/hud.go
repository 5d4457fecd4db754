package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/systems"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	Tick         int32
	FPS          int32
	Particles    int
	MaxParticles int
	Spawned      int
	Dropped      int
	Motion       systems.MotionState
	Facing       systems.Facing
	Jutsu        systems.JutsuState
	Section      string
	Message      string
	Offset       float64
	MaxOffset    float64
	Dark         bool
}

func hud(data any) HUDData { return data.(HUDData) }

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// hudSections describes the debug HUD layout.
var hudSections = []SectionDescriptor{
	{
		ID:    "frame",
		Title: "Frame",
		Fields: []FieldDescriptor{
			{ID: "fps", Label: "FPS", Widget: WidgetText, Getter: func(d any) float32 { return float32(hud(d).FPS) }},
			{ID: "tick", Label: "Tick", Widget: WidgetText, Getter: func(d any) float32 { return float32(hud(d).Tick) }},
			{ID: "theme", Label: "Theme", Widget: WidgetText, TextGetter: func(d any) string {
				if hud(d).Dark {
					return "dark"
				}
				return "light"
			}},
		},
	},
	{
		ID:    "trail",
		Title: "Trail",
		Fields: []FieldDescriptor{
			{ID: "particles", Label: "Particles", Widget: WidgetText, TextGetter: func(d any) string {
				h := hud(d)
				return fmt.Sprintf("%d / %d", h.Particles, h.MaxParticles)
			}},
			{ID: "fill", Label: "Fill", Widget: WidgetBar, Getter: func(d any) float32 {
				h := hud(d)
				if h.MaxParticles == 0 {
					return 0
				}
				return float32(h.Particles) / float32(h.MaxParticles)
			}},
			{ID: "spawned", Label: "Spawned", Widget: WidgetText, Getter: func(d any) float32 { return float32(hud(d).Spawned) }},
			{ID: "dropped", Label: "Dropped", Widget: WidgetText, Getter: func(d any) float32 { return float32(hud(d).Dropped) },
				Visible: func(d any) bool { return hud(d).Dropped > 0 }},
		},
	},
	{
		ID:    "mascot",
		Title: "Mascot",
		Fields: []FieldDescriptor{
			{ID: "motion", Label: "Motion", Widget: WidgetText, TextGetter: func(d any) string {
				h := hud(d)
				dir := "right"
				if h.Facing == systems.FacingLeft {
					dir = "left"
				}
				return h.Motion.String() + " " + dir
			}},
			{ID: "jutsu", Label: "Jutsu", Widget: WidgetText, TextGetter: func(d any) string { return hud(d).Jutsu.String() }},
			{ID: "section", Label: "Section", Widget: WidgetText, TextGetter: func(d any) string { return hud(d).Section }},
			{ID: "message", Label: "Message", Widget: WidgetText, TextGetter: func(d any) string { return truncate(hud(d).Message, 22) }},
		},
	},
	{
		ID:    "scroll",
		Title: "Scroll",
		Fields: []FieldDescriptor{
			{ID: "offset", Label: "Offset", Widget: WidgetText, TextGetter: func(d any) string {
				h := hud(d)
				return fmt.Sprintf("%.0f / %.0f", h.Offset, h.MaxOffset)
			}},
			{ID: "progress", Label: "Progress", Widget: WidgetBar, Getter: func(d any) float32 {
				h := hud(d)
				if h.MaxOffset <= 0 {
					return 0
				}
				return float32(h.Offset / h.MaxOffset)
			}},
		},
	},
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    240,
	}
}

// SetTheme restyles the HUD.
func (h *HUD) SetTheme(t Theme) {
	h.renderer.Theme = t
}

// Draw renders the HUD panel in the top-left corner and returns the Y below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	padding := r.Theme.Padding
	x, y := int32(10), int32(10)

	r.DrawPanel(x, y, h.width, r.SectionsHeight(hudSections, data)+padding*2)
	y += padding
	for _, sd := range hudSections {
		y = r.DrawSection(x+padding, y, sd, data, h.width-padding*2)
	}
	return y + padding
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.renderer.Theme.LabelColor)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Budget      time.Duration
	OverBudget  int
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the frame phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// SetTheme restyles the panel.
func (p *PerfPanel) SetTheme(t Theme) {
	p.renderer.Theme = t
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, phases []string) {
	r := p.renderer
	x := p.x
	y := p.y

	r.DrawPanel(x-r.Theme.Padding, y-r.Theme.Padding, 260, int32(len(phases))*14+72)

	rl.DrawText("Frame Timing", x, y, 16, r.Theme.ValueColor)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, r.Theme.SectionHeader)
	y += 16

	if data.Budget > 0 {
		color := r.Theme.LabelColor
		if data.OverBudget > 0 {
			color = r.Theme.Warn
		}
		rl.DrawText(fmt.Sprintf("Over %s: %d frames", data.Budget.Round(time.Microsecond), data.OverBudget), x, y, 12, color)
		y += 16
	}

	for _, name := range phases {
		avg := data.SystemTimes[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := r.Theme.LabelColor
		if pct > 50 {
			color = r.Theme.Hot
		} else if pct > 25 {
			color = r.Theme.Warn
		}

		displayName := name
		if data.Registry != nil {
			displayName = data.Registry.GetName(name)
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
