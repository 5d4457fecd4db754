package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Trail population sampled every frame
	ParticlesMean float64 `csv:"particles_mean"`
	ParticlesP90  float64 `csv:"particles_p90"`
	ParticlesMax  float64 `csv:"particles_max"`

	// Trail events during window
	Spawned int `csv:"spawned"`
	Dropped int `csv:"dropped"`
	Expired int `csv:"expired"`

	// Input
	PointerDropped   int `csv:"pointer_dropped"`   // Moves discarded by coalescing
	ScrollEvents     int `csv:"scroll_events"`     // Scroll recompute requests
	ScrollRecomputes int `csv:"scroll_recomputes"` // Recomputes actually run

	// Mascot
	RunStarts    int     `csv:"run_starts"`
	Messages     int     `csv:"messages"`
	Clones       int     `csv:"clones"`
	ClonesDenied int     `csv:"clones_denied"`
	RunningFrac  float64 `csv:"running_frac"` // Fraction of frames spent running
	Section      string  `csv:"section"`      // Section in view at window end
}

// Quantile returns the p-quantile of values using the empirical CDF.
// Returns 0 if values is empty.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeCountStats calculates mean, p90 and max from per-frame samples.
func ComputeCountStats(values []float64) (mean, p90, max float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(values, nil)
	p90 = Quantile(values, 0.90)
	max = floats.Max(values)
	return mean, p90, max
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"particles_mean", s.ParticlesMean,
		"particles_max", s.ParticlesMax,
		"spawned", s.Spawned,
		"dropped", s.Dropped,
		"expired", s.Expired,
		"pointer_dropped", s.PointerDropped,
		"scroll_events", s.ScrollEvents,
		"scroll_recomputes", s.ScrollRecomputes,
		"run_starts", s.RunStarts,
		"messages", s.Messages,
		"clones", s.Clones,
		"clones_denied", s.ClonesDenied,
		"running_frac", s.RunningFrac,
		"section", s.Section,
	)
}
