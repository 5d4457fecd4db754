package telemetry

import "math"

// Counters is a snapshot of the monotonically increasing counters kept by the
// trail, input and mascot systems.
type Counters struct {
	Spawned          int
	Dropped          int
	Expired          int
	PointerDropped   int
	ScrollEvents     int
	ScrollRecomputes int
	RunStarts        int
	Messages         int
	Clones           int
	ClonesDenied     int
}

func (c Counters) sub(o Counters) Counters {
	return Counters{
		Spawned:          c.Spawned - o.Spawned,
		Dropped:          c.Dropped - o.Dropped,
		Expired:          c.Expired - o.Expired,
		PointerDropped:   c.PointerDropped - o.PointerDropped,
		ScrollEvents:     c.ScrollEvents - o.ScrollEvents,
		ScrollRecomputes: c.ScrollRecomputes - o.ScrollRecomputes,
		RunStarts:        c.RunStarts - o.RunStarts,
		Messages:         c.Messages - o.Messages,
		Clones:           c.Clones - o.Clones,
		ClonesDenied:     c.ClonesDenied - o.ClonesDenied,
	}
}

// Collector accumulates per-frame samples within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32
	base            Counters

	particleSamples []float64
	runningFrames   int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per frame (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		particleSamples:     make([]float64, 0, ticksPerWindow),
	}
}

// RecordFrame samples per-frame state.
func (c *Collector) RecordFrame(particles int, running bool) {
	c.particleSamples = append(c.particleSamples, float64(particles))
	if running {
		c.runningFrames++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from counter deltas since the previous flush
// and resets the per-frame samples.
func (c *Collector) Flush(currentTick int32, totals Counters, section string) WindowStats {
	delta := totals.sub(c.base)
	mean, p90, max := ComputeCountStats(c.particleSamples)

	var runningFrac float64
	if n := len(c.particleSamples); n > 0 {
		runningFrac = float64(c.runningFrames) / float64(n)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		ParticlesMean: mean,
		ParticlesP90:  p90,
		ParticlesMax:  max,

		Spawned: delta.Spawned,
		Dropped: delta.Dropped,
		Expired: delta.Expired,

		PointerDropped:   delta.PointerDropped,
		ScrollEvents:     delta.ScrollEvents,
		ScrollRecomputes: delta.ScrollRecomputes,

		RunStarts:    delta.RunStarts,
		Messages:     delta.Messages,
		Clones:       delta.Clones,
		ClonesDenied: delta.ClonesDenied,
		RunningFrac:  runningFrac,
		Section:      section,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.base = totals
	c.particleSamples = c.particleSamples[:0]
	c.runningFrames = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
