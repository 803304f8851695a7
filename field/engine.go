// Package field implements the procedural animation engine behind the wall:
// a grid of cells whose activation is driven by two advected noise fields,
// smoothed over time, and resolved into per-cell color and opacity.
package field

import (
	"runtime"
	"sync"
)

// parallelRowThreshold is the minimum visible row count to fan a frame out
// across workers. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelRowThreshold = 64

// Cell is one render-ready quad in surface pixels.
type Cell struct {
	X, Y  float32
	Size  float32
	Color RGB
	Alpha float32
}

// Engine owns the grid, the palette, and the two noise fields, and turns
// host time into a stream of render-ready cells. Frames are strictly
// sequential: each one smooths on top of the activation the previous frame
// stored. Rebuild and Frame must not run concurrently.
type Engine struct {
	macro *Sampler
	micro *Sampler
	pal   Palette

	grid *Grid
	out  []Cell
}

// New creates an engine with an empty grid. Call Rebuild before the first
// Frame.
func New(pal Palette) *Engine {
	return &Engine{
		macro: NewSampler("macro-cloud"),
		micro: NewSampler("micro-texture"),
		pal:   pal,
		grid:  &Grid{},
	}
}

// SetPalette swaps the wall colors without touching layout or activation.
func (e *Engine) SetPalette(pal Palette) {
	e.pal = pal
}

// Palette returns the current wall colors.
func (e *Engine) Palette() Palette {
	return e.pal
}

// Rebuild lays the grid out for a surface size. Any previously accumulated
// activation is discarded; geometry changes invalidate cell identity.
func (e *Engine) Rebuild(width, height float64, p Params) {
	e.grid = Build(width, height, p)
	if cap(e.out) < e.grid.CellCount() {
		e.out = make([]Cell, e.grid.CellCount())
	}
}

// Grid exposes the current layout and activation, for telemetry and tests.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Frame advances the wall to the given host time and returns the visible
// cells in raster order. With motion disabled the pattern holds at its
// frozen t=0 shape but still smooths and renders. The returned slice is
// reused by the next call.
func (e *Engine) Frame(now float64, motion bool, p Params) []Cell {
	g := e.grid
	if g.Cols == 0 || g.Rows == 0 {
		return e.out[:0]
	}

	t := 0.0
	if motion {
		t = now * p.TimeScale
	}

	// The vertical mask grows downward, so fully masked rows form a prefix.
	// They are skipped whole: no quads, and no activation update, so cells
	// outside the band freeze until it reaches them again.
	firstRow := g.Rows
	for y := 0; y < g.Rows; y++ {
		ny := float64(y) / float64(g.Rows)
		if verticalMask(ny, p.MaskHeight, p.MaskFeatherY) > 0 {
			firstRow = y
			break
		}
	}
	visibleRows := g.Rows - firstRow
	if visibleRows == 0 {
		return e.out[:0]
	}

	out := e.out[:visibleRows*g.Cols]

	numWorkers := runtime.GOMAXPROCS(0)
	if visibleRows < parallelRowThreshold || numWorkers <= 1 {
		e.renderRows(firstRow, g.Rows, t, p, out)
		return out
	}

	// Row ranges touch disjoint activation and output slots, so workers
	// need no synchronization beyond the final wait.
	chunkSize := (visibleRows + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for start := firstRow; start < g.Rows; start += chunkSize {
		end := start + chunkSize
		if end > g.Rows {
			end = g.Rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			e.renderRows(start, end, t, p, out[(start-firstRow)*g.Cols:(end-firstRow)*g.Cols])
		}(start, end)
	}
	wg.Wait()
	return out
}

// renderRows composites, smooths, and resolves rows [startRow, endRow) into
// out, which must hold exactly (endRow-startRow)*Cols cells.
func (e *Engine) renderRows(startRow, endRow int, t float64, p Params, out []Cell) {
	g := e.grid
	size := float32(p.CellSize)

	for y := startRow; y < endRow; y++ {
		ny := float64(y) / float64(g.Rows)
		maskVal := verticalMask(ny, p.MaskHeight, p.MaskFeatherY)
		rowOut := out[(y-startRow)*g.Cols:]

		for x := 0; x < g.Cols; x++ {
			i := y*g.Cols + x
			target := composeTarget(e.macro, e.micro, x, y, g.Bias[i], t, p)

			// The one persistent-state write in the engine.
			g.Activation[i] = smooth(g.Activation[i], target, p.Smoothing)

			color, alpha := e.pal.Resolve(g.Class[i], g.Activation[i], maskVal, p)
			rowOut[x] = Cell{
				X:     float32(float64(x) * g.Pitch),
				Y:     float32(float64(y) * g.Pitch),
				Size:  size,
				Color: color,
				Alpha: float32(alpha),
			}
		}
	}
}
