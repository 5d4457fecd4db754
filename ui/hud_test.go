package ui

import (
	"testing"

	"github.com/pthm-cable/folio/systems"
)

func findField(t *testing.T, id string) FieldDescriptor {
	t.Helper()
	for _, sd := range hudSections {
		for _, fd := range sd.Fields {
			if fd.ID == id {
				return fd
			}
		}
	}
	t.Fatalf("field %q not found", id)
	return FieldDescriptor{}
}

func TestHUDFieldText(t *testing.T) {
	data := HUDData{
		FPS:          60,
		Particles:    42,
		MaxParticles: 150,
		Motion:       systems.MotionRunning,
		Facing:       systems.FacingLeft,
		Jutsu:        systems.JutsuCloning,
		Section:      "projects",
		Offset:       250,
		MaxOffset:    1000,
		Dark:         true,
	}

	tests := []struct {
		id   string
		want string
	}{
		{"fps", "60"},
		{"particles", "42 / 150"},
		{"theme", "dark"},
		{"section", "projects"},
		{"offset", "250 / 1000"},
		{"jutsu", systems.JutsuCloning.String()},
		{"motion", systems.MotionRunning.String() + " left"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := FieldText(findField(t, tt.id), data); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestHUDBars(t *testing.T) {
	fill := findField(t, "fill")
	progress := findField(t, "progress")

	if got := fill.Getter(HUDData{Particles: 75, MaxParticles: 150}); got != 0.5 {
		t.Errorf("fill = %v, want 0.5", got)
	}
	if got := fill.Getter(HUDData{}); got != 0 {
		t.Errorf("fill with zero cap = %v, want 0", got)
	}
	if got := progress.Getter(HUDData{Offset: 100, MaxOffset: 0}); got != 0 {
		t.Errorf("progress on short page = %v, want 0", got)
	}
}

func TestSectionsHeightSkipsHidden(t *testing.T) {
	r := NewRenderer()
	lh := r.Theme.LineHeight

	sections := []SectionDescriptor{{
		Title: "T",
		Fields: []FieldDescriptor{
			{Widget: WidgetText},
			{Widget: WidgetBar},
			{Widget: WidgetText, Visible: func(any) bool { return false }},
		},
	}}
	want := lh + lh + (lh + 2) + 4
	if got := r.SectionsHeight(sections, nil); got != want {
		t.Errorf("SectionsHeight = %d, want %d", got, want)
	}

	sections[0].Visible = func(any) bool { return false }
	if got := r.SectionsHeight(sections, nil); got != 0 {
		t.Errorf("hidden section height = %d, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"Shadow Clone Jutsu!", 10, "Shadow ..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
