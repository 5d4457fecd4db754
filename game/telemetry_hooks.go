package game

import (
	"log/slog"

	"github.com/pthm-cable/folio/telemetry"
)

// counters snapshots the running totals of every system.
func (g *Game) counters() telemetry.Counters {
	ts := g.trail.Stats()
	ms := g.mascot.Stats()
	requested, flushed := g.throttle.Counts()
	return telemetry.Counters{
		Spawned:          ts.Spawned,
		Dropped:          ts.Dropped,
		Expired:          ts.Expired,
		PointerDropped:   g.pointer.Dropped(),
		ScrollEvents:     requested,
		ScrollRecomputes: flushed,
		RunStarts:        ms.RunStarts,
		Messages:         ms.Messages,
		Clones:           ms.Clones,
		ClonesDenied:     ms.ClonesDenied,
	}
}

// flushTelemetry emits a stats window once enough frames have passed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.counters(), g.mascot.View().Section)
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
