package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few frames
	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseEngine)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}

	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseEngine]; !ok {
		t.Error("expected engine phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseDraw]; !ok {
		t.Error("expected draw phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Overfill the window
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseEngine)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration after window filled")
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations. Sleeps sit well above the
	// scheduler's timer granularity so the ordering holds on coarse-clock
	// hosts.
	for i := 0; i < 3; i++ {
		pc.StartFrame()
		pc.StartPhase("fast")
		time.Sleep(2 * time.Millisecond)
		pc.StartPhase("slow")
		time.Sleep(20 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseEngine)
		time.Sleep(50 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(50 * time.Microsecond)
		pc.EndFrame()
	}

	csv := pc.Stats().ToCSV(180)

	if csv.WindowEnd != 180 {
		t.Errorf("expected window_end 180, got %d", csv.WindowEnd)
	}
	if csv.AvgFrameUS <= 0 {
		t.Error("expected positive avg frame time")
	}
	if csv.EnginePct <= 0 || csv.DrawPct <= 0 {
		t.Errorf("expected positive phase percentages, got engine=%v draw=%v", csv.EnginePct, csv.DrawPct)
	}
}
