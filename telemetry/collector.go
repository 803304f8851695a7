// Package telemetry provides frame timing and activation-field statistics
// for tuning and soak runs.
package telemetry

import (
	"github.com/pthm-cable/drift/field"
)

// Collector samples the activation field at a fixed frame cadence and folds
// each window into a WindowStats record.
type Collector struct {
	windowFrames int
	windowStart  int
	scratch      []float64
}

// NewCollector creates a stats collector closing a window every windowFrames
// frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 60
	}
	return &Collector{windowFrames: windowFrames}
}

// Observe is called once per rendered frame with the frame index, the wall
// clock in seconds, the grid, and the number of cells the frame emitted.
// When the frame closes a window it returns that window's stats and true.
func (c *Collector) Observe(frame int, wallTime float64, g *field.Grid, visibleCells int) (WindowStats, bool) {
	if frame-c.windowStart+1 < c.windowFrames {
		return WindowStats{}, false
	}

	stats := c.snapshot(frame, wallTime, g, visibleCells)
	c.windowStart = frame + 1
	return stats, true
}

// Reset restarts the current window, e.g. after a grid rebuild invalidates
// cell identity.
func (c *Collector) Reset(frame int) {
	c.windowStart = frame
}

func (c *Collector) snapshot(frame int, wallTime float64, g *field.Grid, visibleCells int) WindowStats {
	s := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		WallTimeSec:      wallTime,
		Cells:            g.CellCount(),
		VisibleCells:     visibleCells,
	}

	for _, class := range g.Class {
		if class != field.Base {
			s.AccentCells++
		}
	}

	// Stats cover the visible suffix of the grid: masked rows freeze and
	// would drag the distribution toward zero.
	first := g.CellCount() - visibleCells
	if first < 0 {
		first = 0
	}
	act := g.Activation[first:]
	if len(act) == 0 {
		return s
	}

	if cap(c.scratch) < len(act) {
		c.scratch = make([]float64, len(act))
	}
	c.scratch = c.scratch[:len(act)]
	copy(c.scratch, act)

	lit := 0
	for _, v := range c.scratch {
		if v > litThreshold {
			lit++
		}
	}
	s.LitFraction = float64(lit) / float64(len(c.scratch))

	s.ActivationMean, s.ActivationStd, s.ActivationP10, s.ActivationP50, s.ActivationP90 =
		ComputeActivationStats(c.scratch)

	return s
}
