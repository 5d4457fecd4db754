package systems

import "github.com/pthm-cable/folio/telemetry"

// SystemInfo describes a frame-loop system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "visual", "ai")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Timers run first in the frame
	r.Register(SystemInfo{ID: telemetry.PhaseTimers, Name: "Timers", Description: "Runs deferred pulse and clone reverts", Category: "timers"})

	// Input
	r.Register(SystemInfo{ID: telemetry.PhaseInput, Name: "Input", Description: "Coalesces pointer moves and detects double-clicks", Category: "input"})
	r.Register(SystemInfo{ID: telemetry.PhaseScroll, Name: "Scroll", Description: "Eases the page offset and throttles scroll events", Category: "input"})

	// Trail
	r.Register(SystemInfo{ID: telemetry.PhaseSpawn, Name: "Spawn", Description: "Interpolates new trail particles", Category: "trail"})
	r.Register(SystemInfo{ID: telemetry.PhaseUpdate, Name: "Update", Description: "Ages and filters trail particles", Category: "trail"})

	// Mascot
	r.Register(SystemInfo{ID: telemetry.PhaseMascot, Name: "Mascot", Description: "Maps scroll to position, motion and messages", Category: "mascot"})

	// Visual
	r.Register(SystemInfo{ID: telemetry.PhaseRender, Name: "Render", Description: "Draws page, trail overlay and mascot", Category: "visual"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.Get(id); ok {
		return info.Name
	}
	return id
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
