package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayDefaultsDisabled(t *testing.T) {
	reg := NewOverlayRegistry()
	if got := reg.EnabledOverlays(); len(got) != 0 {
		t.Errorf("expected no overlays enabled, got %v", got)
	}
	if len(reg.All()) != 4 {
		t.Errorf("expected 4 default overlays, got %d", len(reg.All()))
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKeyPress(rl.KeyD)
	if !ok || id != OverlayHUD || !on {
		t.Fatalf("KeyD = (%q, %v, %v), want (hud, true, true)", id, on, ok)
	}
	if _, on, _ = reg.HandleKeyPress(rl.KeyD); on {
		t.Error("second press should disable the HUD")
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not toggle anything")
	}
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.SetEnabled(OverlayHUD, true)
	reg.SetEnabled(OverlayPerf, true)

	reg.Toggle(OverlayHelp)
	if reg.IsEnabled(OverlayHUD) {
		t.Error("enabling help should hide the HUD")
	}
	if !reg.IsEnabled(OverlayPerf) {
		t.Error("perf overlay is not exclusive with help")
	}

	want := []OverlayID{OverlayPerf, OverlayHelp}
	got := reg.EnabledOverlays()
	if len(got) != len(want) {
		t.Fatalf("enabled = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("enabled[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOverlayUnknownID(t *testing.T) {
	reg := NewOverlayRegistry()
	if reg.Toggle("missing") {
		t.Error("unknown overlay toggled on")
	}
	reg.SetEnabled("missing", true)
	if reg.IsEnabled("missing") {
		t.Error("unknown overlay enabled")
	}
}

func TestOverlayCategories(t *testing.T) {
	reg := NewOverlayRegistry()
	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "debug" || cats[1] != "visual" {
		t.Errorf("categories = %v, want [debug visual]", cats)
	}
	if n := len(reg.ByCategory("debug")); n != 2 {
		t.Errorf("debug overlays = %d, want 2", n)
	}
}
