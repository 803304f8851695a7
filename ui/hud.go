package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Cols         int
	Rows         int
	VisibleCells int
	AccentCells  int
	Frame        int64
	FPS          int32
	Paused       bool
	Motion       bool
	DebugView    bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Title
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	// Grid info
	rl.DrawText(
		fmt.Sprintf("Grid: %dx%d | Visible: %d | Accents: %d",
			data.Cols, data.Rows, data.VisibleCells, data.AccentCells),
		10, 35, 16, rl.LightGray,
	)

	// Frame info
	rl.DrawText(
		fmt.Sprintf("Frame: %d | FPS: %d", data.Frame, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	// Status
	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	} else if !data.Motion {
		statusText = "Motion off"
	}
	if data.DebugView {
		statusText += " | debug view"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// TelemetryPanel renders the latest activation window stats and frame timings.
type TelemetryPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewTelemetryPanel creates a telemetry panel anchored at the given position.
func NewTelemetryPanel(x, y, width int32) *TelemetryPanel {
	return &TelemetryPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (q *TelemetryPanel) SetPosition(x, y int32) {
	q.x = x
	q.y = y
}

// Draw renders the telemetry panel.
func (q *TelemetryPanel) Draw(stats telemetry.WindowStats, perf telemetry.PerfStats) {
	r := q.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := lineHeight*9 + padding*2 + 8

	r.DrawPanel(q.x, q.y, q.width, panelHeight)

	w := q.width - padding*2
	y := r.DrawTitle(q.x+padding, q.y+padding, "Telemetry")

	y = r.DrawBar(q.x+padding, y, "mean", stats.ActivationMean, w)
	y = r.DrawBar(q.x+padding, y, "lit", stats.LitFraction, w)
	y = r.DrawLabelValue(q.x+padding, y, "p10/50/90",
		fmt.Sprintf("%.2f %.2f %.2f", stats.ActivationP10, stats.ActivationP50, stats.ActivationP90))
	y = r.DrawLabelValue(q.x+padding, y, "std", fmt.Sprintf("%.3f", stats.ActivationStd))
	y = r.DrawSpacer(y, 4)

	y = r.DrawLabelValue(q.x+padding, y, "frame",
		fmt.Sprintf("%s (%.0f fps)", perf.AvgFrameDuration.Round(time.Microsecond), perf.FPS))
	y = r.DrawLabelValue(q.x+padding, y, "engine",
		fmt.Sprintf("%s %4.1f%%", perf.PhaseAvg[telemetry.PhaseEngine].Round(time.Microsecond), perf.PhasePct[telemetry.PhaseEngine]))
	r.DrawLabelValue(q.x+padding, y, "draw",
		fmt.Sprintf("%s %4.1f%%", perf.PhaseAvg[telemetry.PhaseDraw].Round(time.Microsecond), perf.PhasePct[telemetry.PhaseDraw]))
}
