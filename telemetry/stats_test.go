package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/field"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func TestComputeActivationStats_Constant(t *testing.T) {
	// 0.25 is exact in binary, so the mean must come back untouched.
	values := make([]float64, 50)
	for i := range values {
		values[i] = 0.25
	}

	mean, std, p10, p50, p90 := ComputeActivationStats(values)

	if mean != 0.25 {
		t.Errorf("expected mean 0.25, got %f", mean)
	}
	if std != 0 {
		t.Errorf("expected zero std for constant field, got %f", std)
	}
	if p10 != 0.25 || p50 != 0.25 || p90 != 0.25 {
		t.Errorf("expected all percentiles 0.25, got %f/%f/%f", p10, p50, p90)
	}
}

func TestComputeActivationStats_Ramp(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) / 99
	}

	mean, std, p10, p50, p90 := ComputeActivationStats(values)

	if math.Abs(mean-0.5) > 1e-9 {
		t.Errorf("expected mean 0.5 for uniform ramp, got %f", mean)
	}
	if std <= 0 {
		t.Errorf("expected positive std, got %f", std)
	}
	if !(p10 <= p50 && p50 <= p90) {
		t.Errorf("percentiles out of order: %f/%f/%f", p10, p50, p90)
	}
	if p10 < 0 || p90 > 1 {
		t.Errorf("percentiles outside value range: %f/%f", p10, p90)
	}
}

func TestComputeActivationStats_Empty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeActivationStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("expected all zeros for empty input")
	}
}

func TestCollectorWindows(t *testing.T) {
	p := config.Cfg().EngineParams()
	p.CellSize = 3
	p.Gap = 5
	g := field.Build(100, 100, p)

	// Known activation pattern: half the cells lit.
	for i := range g.Activation {
		if i%2 == 0 {
			g.Activation[i] = 0.9
		} else {
			g.Activation[i] = 0.1
		}
	}

	c := NewCollector(5)

	for frame := 0; frame < 4; frame++ {
		if _, ok := c.Observe(frame, float64(frame)/60, g, g.CellCount()); ok {
			t.Fatalf("window closed early at frame %d", frame)
		}
	}

	stats, ok := c.Observe(4, 4.0/60, g, g.CellCount())
	if !ok {
		t.Fatal("expected window to close on frame 4")
	}
	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 4 {
		t.Errorf("unexpected window bounds: %d..%d", stats.WindowStartFrame, stats.WindowEndFrame)
	}
	if stats.Cells != g.CellCount() || stats.VisibleCells != g.CellCount() {
		t.Errorf("unexpected cell counts: %d/%d", stats.Cells, stats.VisibleCells)
	}

	// 169 cells: 85 at 0.9, 84 at 0.1.
	wantLit := 85.0 / 169.0
	if math.Abs(stats.LitFraction-wantLit) > 1e-9 {
		t.Errorf("expected lit fraction %f, got %f", wantLit, stats.LitFraction)
	}
	if stats.ActivationMean <= 0.1 || stats.ActivationMean >= 0.9 {
		t.Errorf("mean should sit between the two levels, got %f", stats.ActivationMean)
	}

	// Next window closes 5 frames later.
	for frame := 5; frame < 9; frame++ {
		if _, ok := c.Observe(frame, float64(frame)/60, g, g.CellCount()); ok {
			t.Fatalf("second window closed early at frame %d", frame)
		}
	}
	if _, ok := c.Observe(9, 9.0/60, g, g.CellCount()); !ok {
		t.Error("expected second window to close on frame 9")
	}
}

func TestCollectorVisibleSuffix(t *testing.T) {
	p := config.Cfg().EngineParams()
	p.CellSize = 3
	p.Gap = 5
	g := field.Build(100, 100, p)

	// Frozen masked prefix at zero, visible suffix fully lit.
	visible := 4 * g.Cols
	first := g.CellCount() - visible
	for i := first; i < g.CellCount(); i++ {
		g.Activation[i] = 1.0
	}

	c := NewCollector(1)
	stats, ok := c.Observe(0, 0, g, visible)
	if !ok {
		t.Fatal("expected single-frame window to close immediately")
	}

	// Masked rows must not drag the distribution down.
	if stats.ActivationMean != 1.0 {
		t.Errorf("expected visible mean 1.0, got %f", stats.ActivationMean)
	}
	if stats.LitFraction != 1.0 {
		t.Errorf("expected lit fraction 1.0, got %f", stats.LitFraction)
	}
}

func TestCollectorAccentCount(t *testing.T) {
	p := config.Cfg().EngineParams()
	p.CellSize = 3
	p.Gap = 5
	p.AccentAProb = 0.4
	p.AccentBProb = 0.3
	g := field.Build(300, 300, p)

	want := 0
	for _, class := range g.Class {
		if class != field.Base {
			want++
		}
	}

	c := NewCollector(1)
	stats, _ := c.Observe(0, 0, g, g.CellCount())
	if stats.AccentCells != want {
		t.Errorf("expected %d accent cells, got %d", want, stats.AccentCells)
	}
}

func TestOutputManagerHeadersOnce(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	s := WindowStats{WindowEndFrame: 60, WallTimeSec: 1, Cells: 100}
	if err := om.WriteTelemetry(s); err != nil {
		t.Fatalf("first telemetry write: %v", err)
	}
	s.WindowEndFrame = 120
	if err := om.WriteTelemetry(s); err != nil {
		t.Fatalf("second telemetry write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("closing output manager: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("expected header line, got %q", lines[0])
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error for empty dir: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods must be nil-receiver safe.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("nil WritePerf: %v", err)
	}
	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Errorf("nil WriteConfig: %v", err)
	}
	if om.Dir() != "" {
		t.Error("expected empty dir for nil manager")
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
