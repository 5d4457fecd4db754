package game

import (
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/telemetry"
)

// Options configures game initialization.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string

	// Config overrides the global config when set.
	Config *config.Config

	// StatsCallback is called with each flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)
}
