package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/field"
)

// Slider row layout. The engine reads a fresh parameter snapshot every frame,
// so slider edits take effect immediately without an apply step.
const (
	sliderLabelWidth = 96
	sliderValueWidth = 52
	sliderHeight     = 14
	sliderRowStep    = 20
)

// Row counts drive the panel height. Keep in sync with Draw.
const (
	panelSliderRows = 22
	panelSections   = 7
	panelLabelRows  = 1 // pitch readout
	panelSwatchRows = 4
)

// ParamsPanel renders the live tuning panel: one slider per engine parameter,
// grouped the way the config file groups them.
type ParamsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewParamsPanel creates a tuning panel anchored at the given position.
func NewParamsPanel(x, y, width int32) *ParamsPanel {
	return &ParamsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  false,
	}
}

// SetPosition updates the panel position.
func (p *ParamsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// SetVisible shows or hides the panel.
func (p *ParamsPanel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is shown.
func (p *ParamsPanel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *ParamsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Height returns the panel height implied by its row counts.
func (p *ParamsPanel) Height() int32 {
	lh := p.renderer.Theme.LineHeight
	padding := p.renderer.Theme.Padding

	h := padding*2 + lh + 4 // title
	h += panelSections * (lh + 4)
	h += panelSliderRows * sliderRowStep
	h += (panelLabelRows + panelSwatchRows) * lh
	return h
}

// Draw renders the panel and applies slider edits directly to cfg. It returns
// true when a grid geometry or accent assignment value changed, in which case
// the caller must rebuild the grid.
func (p *ParamsPanel) Draw(cfg *config.Config, pal field.Palette) bool {
	if !p.visible {
		return false
	}

	r := p.renderer
	padding := r.Theme.Padding

	r.DrawPanel(p.x, p.y, p.width, p.Height())

	x := p.x + padding
	y := r.DrawTitle(x, p.y+padding, "Tuning")

	y = r.DrawSectionHeader(x, y, "Cells")
	before := cfg.Cells
	cfg.Cells.Size, y = p.slider(y, "size", cfg.Cells.Size, 2, 40, "%.0f")
	cfg.Cells.Gap, y = p.slider(y, "gap", cfg.Cells.Gap, 0, 24, "%.0f")
	cfg.Cells.AccentAProb, y = p.slider(y, "accent A", cfg.Cells.AccentAProb, 0, 0.3, "%.3f")
	cfg.Cells.AccentBProb, y = p.slider(y, "accent B", cfg.Cells.AccentBProb, 0, 0.3, "%.3f")
	rebuild := cfg.Cells != before
	if rebuild {
		cfg.Recompute()
	}
	y = r.DrawLabelValue(x, y, "pitch", fmt.Sprintf("%.0f px", cfg.Derived.Pitch))
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Macro field")
	cfg.Macro.Scale, y = p.slider(y, "scale", cfg.Macro.Scale, 0.005, 0.2, "%.3f")
	cfg.Macro.Threshold, y = p.slider(y, "threshold", cfg.Macro.Threshold, 0, 1, "%.2f")
	cfg.Macro.Feather, y = p.slider(y, "feather", cfg.Macro.Feather, 0.01, 0.4, "%.2f")
	cfg.Macro.TimeScale, y = p.slider(y, "speed", cfg.Macro.TimeScale, 0, 0.3, "%.3f")
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Micro field")
	cfg.Micro.Scale, y = p.slider(y, "scale", cfg.Micro.Scale, 0.02, 0.8, "%.3f")
	cfg.Micro.Threshold, y = p.slider(y, "threshold", cfg.Micro.Threshold, 0, 1, "%.2f")
	cfg.Micro.Feather, y = p.slider(y, "feather", cfg.Micro.Feather, 0.01, 0.4, "%.2f")
	cfg.Micro.TimeScale, y = p.slider(y, "speed", cfg.Micro.TimeScale, 0, 0.5, "%.3f")
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Drift")
	cfg.Drift.X, y = p.slider(y, "x", cfg.Drift.X, -4, 4, "%.2f")
	cfg.Drift.Y, y = p.slider(y, "y", cfg.Drift.Y, -4, 4, "%.2f")
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Signal")
	cfg.Signal.BiasStrength, y = p.slider(y, "bias", cfg.Signal.BiasStrength, 0, 1, "%.2f")
	cfg.Signal.Gamma, y = p.slider(y, "gamma", cfg.Signal.Gamma, 0.2, 4, "%.2f")
	cfg.Signal.Smoothing, y = p.slider(y, "smoothing", cfg.Signal.Smoothing, 0.01, 1, "%.2f")
	cfg.Signal.ColorMixStrength, y = p.slider(y, "mix", cfg.Signal.ColorMixStrength, 0, 3, "%.2f")
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Mask & alpha")
	cfg.Mask.Height, y = p.slider(y, "height", cfg.Mask.Height, 0, 1, "%.2f")
	cfg.Mask.FeatherY, y = p.slider(y, "feather Y", cfg.Mask.FeatherY, 0.01, 0.5, "%.2f")
	cfg.Alpha.Base, y = p.slider(y, "alpha", cfg.Alpha.Base, 0, 1, "%.2f")
	cfg.Alpha.ActiveBoost, y = p.slider(y, "boost", cfg.Alpha.ActiveBoost, 0, 1, "%.2f")
	y = r.DrawSpacer(y, 4)

	y = r.DrawSectionHeader(x, y, "Palette")
	y = r.DrawColorSwatch(x, y, "bg", swatchColor(pal.Background))
	y = r.DrawColorSwatch(x, y, "base", swatchColor(pal.Base))
	y = r.DrawColorSwatch(x, y, "accent A", swatchColor(pal.AccentA))
	r.DrawColorSwatch(x, y, "accent B", swatchColor(pal.AccentB))

	return rebuild
}

// slider draws one labeled slider row and returns the edited value and the
// next Y position. Values pass through float32 for raygui, so an untouched
// slider compares equal and reports no edit.
func (p *ParamsPanel) slider(y int32, label string, val, min, max float64, format string) (float64, int32) {
	r := p.renderer
	labelX := p.x + r.Theme.Padding
	sliderX := labelX + sliderLabelWidth
	sliderW := p.width - sliderLabelWidth - sliderValueWidth - r.Theme.Padding*2

	rl.DrawText(label, labelX, y+1, r.Theme.FontSize, r.Theme.LabelColor)

	next := gui.SliderBar(
		rl.Rectangle{X: float32(sliderX), Y: float32(y), Width: float32(sliderW), Height: sliderHeight},
		"", "",
		float32(val), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf(format, next), sliderX+sliderW+6, y+1, r.Theme.FontSize, r.Theme.ValueColor)

	if next != float32(val) {
		val = float64(next)
	}
	return val, y + sliderRowStep
}

func swatchColor(c field.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
