package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the panel chrome so the HUD, tuning panel, and telemetry
// panel share one look.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawTitle draws a panel title row and returns the Y below it.
func (r *Renderer) DrawTitle(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize+2, rl.White)
	return y + r.Theme.LineHeight + 4
}

// DrawSectionHeader draws a section header and returns the Y below it.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws one "label: value" row and returns the Y below it.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a labeled progress bar for a [0,1] value, with the numeric
// value printed after the bar. Returns the Y below the row.
func (r *Renderer) DrawBar(x, y int32, label string, value float64, width int32) int32 {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float64(barWidth)*value), r.Theme.BarHeight, r.Theme.BarFill)

	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawColorSwatch draws a labeled color square with its hex value and
// returns the Y below the row.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color) int32 {
	const swatchSize = 12

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)

	swatchX := x + r.Theme.LabelWidth
	rl.DrawRectangle(swatchX, y+1, swatchSize, swatchSize, color)
	rl.DrawRectangleLines(swatchX, y+1, swatchSize, swatchSize, r.Theme.PanelBorder)

	rl.DrawText(fmt.Sprintf("#%02x%02x%02x", color.R, color.G, color.B),
		swatchX+swatchSize+6, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawSpacer adds vertical space and returns the new Y.
func (r *Renderer) DrawSpacer(y, amount int32) int32 {
	return y + amount
}
