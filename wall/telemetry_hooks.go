package wall

import "log/slog"

// observeTelemetry feeds the stats collector and, when a window closes,
// logs and persists the window.
func (w *Wall) observeTelemetry() {
	stats, ok := w.collector.Observe(int(w.frame), w.simTime, w.engine.Grid(), len(w.visible))
	if !ok {
		return
	}
	w.lastStats = stats

	perfStats := w.perf.Stats()

	if w.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := w.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := w.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
