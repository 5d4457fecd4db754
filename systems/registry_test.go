package systems

import (
	"testing"

	"github.com/pthm-cable/folio/telemetry"
)

func TestRegistryDefaults(t *testing.T) {
	reg := NewSystemRegistry()

	ids := reg.IDs()
	want := telemetry.Phases
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, ids[i], want[i])
		}
	}

	if got := reg.GetName(telemetry.PhaseSpawn); got != "Spawn" {
		t.Errorf("GetName(spawn) = %q, want Spawn", got)
	}
	if got := reg.GetName("unknown"); got != "unknown" {
		t.Errorf("GetName fallback = %q, want id", got)
	}
}

func TestRegistryGet(t *testing.T) {
	reg := NewSystemRegistry()

	tests := []struct {
		id       string
		category string
	}{
		{telemetry.PhaseTimers, "timers"},
		{telemetry.PhaseScroll, "input"},
		{telemetry.PhaseUpdate, "trail"},
		{telemetry.PhaseMascot, "mascot"},
		{telemetry.PhaseRender, "visual"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info, ok := reg.Get(tt.id)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.id)
			}
			if info.Category != tt.category {
				t.Errorf("category = %q, want %q", info.Category, tt.category)
			}
			if info.Description == "" {
				t.Error("expected a description")
			}
		})
	}

	if _, ok := reg.Get("unknown"); ok {
		t.Error("Get(unknown) should report not found")
	}
}
