package field

import (
	"math"
	"math/rand"
)

// ColorClass identifies which palette entry a cell pulls toward when active.
type ColorClass uint8

const (
	Base ColorClass = iota
	AccentA
	AccentB
)

// layoutSeed fixes the bias and classification stream. It is never reseeded,
// so rebuilding the same grid shape reproduces the exact same layout.
const layoutSeed = 0x9E3779B9

// Grid is the cell layout for one surface size. Class and Bias are fixed at
// build time; Activation is the single piece of state that persists across
// frames, written only by the temporal smoother.
type Grid struct {
	Cols, Rows int
	Pitch      float64

	Class      []ColorClass
	Bias       []float64 // in [-1, 1], per-cell eagerness to activate
	Activation []float64 // in [0, 1], zero at build
}

// Build lays out the grid covering a width x height surface. Non-positive
// dimensions (or a non-positive pitch) yield a zero-cell grid, which renders
// as a no-op. For fixed dimensions and geometry parameters the resulting
// Class and Bias arrays are bit-identical across builds.
func Build(width, height float64, p Params) *Grid {
	g := &Grid{Pitch: p.CellSize + p.Gap}
	if width <= 0 || height <= 0 || g.Pitch <= 0 {
		return g
	}
	g.Cols = int(math.Ceil(width / g.Pitch))
	g.Rows = int(math.Ceil(height / g.Pitch))

	n := g.Cols * g.Rows
	g.Class = make([]ColorClass, n)
	g.Bias = make([]float64, n)
	g.Activation = make([]float64, n)

	rng := rand.New(rand.NewSource(layoutSeed))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			i := y*g.Cols + x
			// Every cell consumes a bias draw, blocked or not.
			g.Bias[i] = rng.Float64()*2 - 1

			if g.accentNearby(x, y) {
				continue // forced Base, no classification draw
			}
			u := rng.Float64()
			switch {
			case u < p.AccentAProb:
				g.Class[i] = AccentA
			case u < p.AccentAProb+p.AccentBProb:
				g.Class[i] = AccentB
			}
		}
	}
	return g
}

// accentNearby reports whether any already-assigned cell in the causal
// half-neighborhood (left, up-left, up, up-right) is non-Base. Later cells
// in raster order are intentionally not consulted.
func (g *Grid) accentNearby(x, y int) bool {
	if x > 0 && g.Class[y*g.Cols+x-1] != Base {
		return true
	}
	if y == 0 {
		return false
	}
	prev := (y - 1) * g.Cols
	for nx := x - 1; nx <= x+1; nx++ {
		if nx < 0 || nx >= g.Cols {
			continue
		}
		if g.Class[prev+nx] != Base {
			return true
		}
	}
	return false
}

// CellCount returns the number of cells in the grid.
func (g *Grid) CellCount() int {
	return g.Cols * g.Rows
}
