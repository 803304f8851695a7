package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("invalid screen size %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Cells.Size <= 0 {
		t.Errorf("cell size = %v, want > 0", cfg.Cells.Size)
	}
	if cfg.Cells.AccentAProb+cfg.Cells.AccentBProb >= 1 {
		t.Errorf("accent probabilities sum to %v, want < 1",
			cfg.Cells.AccentAProb+cfg.Cells.AccentBProb)
	}
	if cfg.Signal.Smoothing <= 0 || cfg.Signal.Smoothing > 1 {
		t.Errorf("smoothing = %v, want in (0,1]", cfg.Signal.Smoothing)
	}
	if cfg.Alpha.Base+cfg.Alpha.ActiveBoost > 1 {
		t.Errorf("alpha base+boost = %v, want <= 1", cfg.Alpha.Base+cfg.Alpha.ActiveBoost)
	}
	if cfg.Derived.Pitch != cfg.Cells.Size+cfg.Cells.Gap {
		t.Errorf("derived pitch = %v, want %v", cfg.Derived.Pitch, cfg.Cells.Size+cfg.Cells.Gap)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	overlay := []byte("cells:\n  size: 8\n  gap: 2\nmask:\n  height: 0.9\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	defaults, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(overlay) failed: %v", err)
	}

	if cfg.Cells.Size != 8 || cfg.Cells.Gap != 2 {
		t.Errorf("cells = %v/%v, want 8/2", cfg.Cells.Size, cfg.Cells.Gap)
	}
	if cfg.Mask.Height != 0.9 {
		t.Errorf("mask height = %v, want 0.9", cfg.Mask.Height)
	}
	if cfg.Derived.Pitch != 10 {
		t.Errorf("derived pitch = %v, want 10", cfg.Derived.Pitch)
	}

	// Fields absent from the overlay keep their defaults
	if cfg.Macro.Scale != defaults.Macro.Scale {
		t.Errorf("macro scale = %v, want default %v", cfg.Macro.Scale, defaults.Macro.Scale)
	}
	if cfg.Palette.Background != defaults.Palette.Background {
		t.Errorf("background = %q, want default %q", cfg.Palette.Background, defaults.Palette.Background)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestRecompute(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	cfg.Cells.Size = 5
	cfg.Cells.Gap = 3
	cfg.Recompute()

	if cfg.Derived.Pitch != 8 {
		t.Errorf("pitch after Recompute = %v, want 8", cfg.Derived.Pitch)
	}
}

func TestEngineParams(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	cfg.Cells.Size = 3
	cfg.Cells.Gap = 5
	cfg.Cells.AccentAProb = 0.07
	cfg.Cells.AccentBProb = 0.05
	cfg.Macro.Threshold = 0.61
	cfg.Micro.TimeScale = 0.21
	cfg.Drift.Y = -0.5
	cfg.Signal.Gamma = 2.2
	cfg.Mask.Height = 0.3
	cfg.Animation.DebugView = true

	p := cfg.EngineParams()

	if p.CellSize != 3 || p.Gap != 5 {
		t.Errorf("geometry = %v/%v, want 3/5", p.CellSize, p.Gap)
	}
	if p.AccentAProb != 0.07 || p.AccentBProb != 0.05 {
		t.Errorf("accent probs = %v/%v, want 0.07/0.05", p.AccentAProb, p.AccentBProb)
	}
	if p.MacroThreshold != 0.61 {
		t.Errorf("macro threshold = %v, want 0.61", p.MacroThreshold)
	}
	if p.MicroTimeScale != 0.21 {
		t.Errorf("micro time scale = %v, want 0.21", p.MicroTimeScale)
	}
	if p.DriftY != -0.5 {
		t.Errorf("drift y = %v, want -0.5", p.DriftY)
	}
	if p.Gamma != 2.2 {
		t.Errorf("gamma = %v, want 2.2", p.Gamma)
	}
	if p.MaskHeight != 0.3 {
		t.Errorf("mask height = %v, want 0.3", p.MaskHeight)
	}
	if !p.DebugView {
		t.Error("debug view not carried into params")
	}
}
