// Package renderer blits the engine's render-ready cells to the window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/field"
)

// CellRenderer draws one frame of wall cells over the background color.
// The engine resolves color and alpha per cell; nothing here recomputes
// them.
type CellRenderer struct {
	background rl.Color
}

// NewCellRenderer creates a renderer clearing to the palette background.
func NewCellRenderer(pal field.Palette) *CellRenderer {
	r := &CellRenderer{}
	r.SetPalette(pal)
	return r
}

// SetPalette updates the background clear color.
func (r *CellRenderer) SetPalette(pal field.Palette) {
	r.background = rl.NewColor(pal.Background.R, pal.Background.G, pal.Background.B, 255)
}

// Draw clears the frame and blits every cell quad.
func (r *CellRenderer) Draw(cells []field.Cell) {
	rl.ClearBackground(r.background)

	for i := range cells {
		c := &cells[i]
		col := rl.NewColor(c.Color.R, c.Color.G, c.Color.B, 255)
		rl.DrawRectangleV(
			rl.NewVector2(c.X, c.Y),
			rl.NewVector2(c.Size, c.Size),
			rl.Fade(col, c.Alpha),
		)
	}
}
