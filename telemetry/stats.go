package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// litThreshold is the activation level above which a cell counts as lit.
const litThreshold = 0.5

// WindowStats holds aggregated activation-field statistics for one window
// of frames.
type WindowStats struct {
	WindowStartFrame int     `csv:"-"`
	WindowEndFrame   int     `csv:"window_end"`
	WallTimeSec      float64 `csv:"wall_time"`

	// Grid shape at window end
	Cells        int `csv:"cells"`
	VisibleCells int `csv:"visible_cells"`
	AccentCells  int `csv:"accent_cells"`

	// Activation distribution over visible cells (sampled at window end)
	ActivationMean float64 `csv:"activation_mean"`
	ActivationStd  float64 `csv:"activation_std"`
	ActivationP10  float64 `csv:"activation_p10"`
	ActivationP50  float64 `csv:"activation_p50"`
	ActivationP90  float64 `csv:"activation_p90"`

	// Fraction of visible cells above the lit threshold
	LitFraction float64 `csv:"lit_fraction"`
}

// ComputeActivationStats calculates mean, standard deviation, and percentiles
// from activation values. The input is reordered in place for the quantiles.
func ComputeActivationStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartFrame),
		slog.Int("window_end", s.WindowEndFrame),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Int("cells", s.Cells),
		slog.Int("visible_cells", s.VisibleCells),
		slog.Int("accent_cells", s.AccentCells),
		slog.Float64("activation_mean", s.ActivationMean),
		slog.Float64("activation_std", s.ActivationStd),
		slog.Float64("activation_p10", s.ActivationP10),
		slog.Float64("activation_p50", s.ActivationP50),
		slog.Float64("activation_p90", s.ActivationP90),
		slog.Float64("lit_fraction", s.LitFraction),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"wall_time", s.WallTimeSec,
		"cells", s.Cells,
		"visible_cells", s.VisibleCells,
		"accent_cells", s.AccentCells,
		"activation_mean", s.ActivationMean,
		"activation_std", s.ActivationStd,
		"activation_p10", s.ActivationP10,
		"activation_p50", s.ActivationP50,
		"activation_p90", s.ActivationP90,
		"lit_fraction", s.LitFraction,
	)
}
