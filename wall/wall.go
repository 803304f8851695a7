// Package wall runs the animated wall: it owns the engine, the draw path,
// the tuning panel, and per-frame telemetry.
package wall

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/field"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

// Panel geometry
const (
	panelWidth      = 300
	statsPanelWidth = 250
	panelMargin     = 10
)

// Options configures a wall instance.
type Options struct {
	LogStats      bool   // Log window stats and frame timings via slog
	OutputDir     string // Directory for CSV logs and a config snapshot ("" = disabled)
	ReducedMotion bool   // Start with motion disabled
	Headless      bool   // No window; soak runs drive UpdateHeadless directly
}

// Wall holds the frame loop state and every subsystem behind it.
type Wall struct {
	engine       *field.Engine
	cellRenderer *renderer.CellRenderer

	hud        *ui.HUD
	panel      *ui.ParamsPanel
	statsPanel *ui.TelemetryPanel

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	logStats bool

	frame        int64
	simTime      float64
	paused       bool
	sampling     bool
	needsRebuild bool
	showStats    bool

	// Last rendered frame, in raster order. Owned by the engine and
	// refreshed on every unpaused update.
	visible     []field.Cell
	accentCells int
	lastStats   telemetry.WindowStats

	screenWidth, screenHeight float64
}

// New creates a wall from the global config. The first Update lays out the
// grid.
func New(opts Options) (*Wall, error) {
	cfg := config.Cfg()

	if opts.ReducedMotion {
		cfg.Animation.Motion = false
	}

	pal, err := field.ParsePalette(
		cfg.Palette.Background, cfg.Palette.Base, cfg.Palette.AccentA, cfg.Palette.AccentB)
	if err != nil {
		slog.Warn("invalid palette, falling back to built-in colors", "error", err)
		pal = field.DefaultPalette()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	w := &Wall{
		engine:       field.New(pal),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:    telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:       output,
		logStats:     opts.LogStats,
		needsRebuild: true,
		screenWidth:  float64(cfg.Screen.Width),
		screenHeight: float64(cfg.Screen.Height),
	}

	if !opts.Headless {
		w.cellRenderer = renderer.NewCellRenderer(pal)
		w.hud = ui.NewHUD()
		w.panel = ui.NewParamsPanel(int32(cfg.Screen.Width)-panelWidth-panelMargin, panelMargin, panelWidth)
		w.statsPanel = ui.NewTelemetryPanel(panelMargin, 100, statsPanelWidth)
	}

	return w, nil
}

// Update advances one frame: input, grid maintenance, engine step, telemetry.
func (w *Wall) Update() {
	cfg := config.Cfg()

	w.handleInput(cfg)

	if w.needsRebuild {
		w.rebuild(cfg)
	}

	// Paused frames still draw but stay out of the perf window, so the
	// rolling averages describe rendered frames only.
	if w.paused {
		w.sampling = false
		return
	}
	w.sampling = true

	w.perf.StartFrame()
	w.perf.StartPhase(telemetry.PhaseEngine)
	w.simTime += float64(rl.GetFrameTime())
	w.visible = w.engine.Frame(w.simTime, cfg.Animation.Motion, cfg.EngineParams())

	w.perf.StartPhase(telemetry.PhaseStats)
	w.observeTelemetry()
	w.frame++
}

// UpdateHeadless advances one frame at the configured FPS without a window.
// Soak runs use it to exercise the engine and telemetry at full speed.
func (w *Wall) UpdateHeadless() {
	cfg := config.Cfg()

	if w.needsRebuild {
		w.rebuild(cfg)
	}

	w.perf.StartFrame()
	w.perf.StartPhase(telemetry.PhaseEngine)

	w.simTime += 1.0 / float64(cfg.Screen.TargetFPS)
	w.visible = w.engine.Frame(w.simTime, cfg.Animation.Motion, cfg.EngineParams())

	w.perf.StartPhase(telemetry.PhaseStats)
	w.observeTelemetry()
	w.frame++

	w.perf.EndFrame()
}

// Draw renders the current frame and the UI layer.
func (w *Wall) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()

	if w.sampling {
		w.perf.StartPhase(telemetry.PhaseDraw)
	}
	w.cellRenderer.Draw(w.visible)

	if w.sampling {
		w.perf.StartPhase(telemetry.PhaseUI)
	}
	g := w.engine.Grid()
	w.hud.Draw(ui.HUDData{
		Title:        "Drift",
		Cols:         g.Cols,
		Rows:         g.Rows,
		VisibleCells: len(w.visible),
		AccentCells:  w.accentCells,
		Frame:        w.frame,
		FPS:          rl.GetFPS(),
		Paused:       w.paused,
		Motion:       cfg.Animation.Motion,
		DebugView:    cfg.Animation.DebugView,
	})
	w.hud.DrawControls(int32(w.screenHeight),
		"Space pause | M motion | D debug | Tab tuning | T telemetry | F11 fullscreen")

	if w.showStats {
		w.statsPanel.Draw(w.lastStats, w.perf.Stats())
	}

	if w.panel.Draw(cfg, w.engine.Palette()) {
		w.needsRebuild = true
	}

	if w.sampling {
		w.perf.EndFrame()
	}
	rl.EndDrawing()
}

// rebuild lays the grid out for the current surface and parameters. The
// stats window restarts because cell identity does not survive a rebuild.
func (w *Wall) rebuild(cfg *config.Config) {
	w.needsRebuild = false

	w.engine.Rebuild(w.screenWidth, w.screenHeight, cfg.EngineParams())
	w.collector.Reset(int(w.frame))
	w.countAccents()

	g := w.engine.Grid()
	slog.Info("grid rebuilt",
		"cols", g.Cols,
		"rows", g.Rows,
		"cells", g.CellCount(),
		"pitch", g.Pitch,
	)
}

// countAccents caches the accent census for the HUD.
func (w *Wall) countAccents() {
	w.accentCells = 0
	for _, class := range w.engine.Grid().Class {
		if class != field.Base {
			w.accentCells++
		}
	}
}

// Frame returns the number of frames rendered so far.
func (w *Wall) Frame() int64 {
	return w.frame
}

// Engine exposes the engine, for preview and export tooling.
func (w *Wall) Engine() *field.Engine {
	return w.engine
}

// Close flushes telemetry output.
func (w *Wall) Close() error {
	return w.output.Close()
}
