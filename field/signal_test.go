package field

import (
	"math"
	"testing"
)

func TestSmoothstepMonotoneBounded(t *testing.T) {
	prev := -1.0
	for v := -10.0; v <= 10.0; v += 0.01 {
		m := smoothstep(v, 0.55, 0.22)
		if m < 0 || m > 1 {
			t.Fatalf("smoothstep(%f) = %f, outside [0,1]", v, m)
		}
		if m < prev {
			t.Fatalf("smoothstep not monotone at %f: %f < %f", v, m, prev)
		}
		prev = m
	}
}

func TestSmoothstepBandEdges(t *testing.T) {
	thr, feather := 0.5, 0.2

	if m := smoothstep(thr-feather, thr, feather); m != 0 {
		t.Errorf("expected 0 at band start, got %f", m)
	}
	if m := smoothstep(thr+feather, thr, feather); m != 1 {
		t.Errorf("expected 1 at band end, got %f", m)
	}
	// Hermite ease passes through 0.5 at band center.
	if m := smoothstep(thr, thr, feather); math.Abs(m-0.5) > 1e-12 {
		t.Errorf("expected 0.5 at band center, got %f", m)
	}
}

func TestVerticalMaskFullHeight(t *testing.T) {
	for ny := 0.0; ny < 1.0; ny += 0.05 {
		if m := verticalMask(ny, 1.0, 0.2); m != 1 {
			t.Errorf("expected maskVal 1 at ny=%f with full height, got %f", ny, m)
		}
	}
}

func TestVerticalMaskCutoff(t *testing.T) {
	// height 0.3 puts the threshold at ny=0.7; with feather 0.2 the ramp
	// starts at ny=0.5, so everything above that is exactly zero.
	for _, ny := range []float64{0, 0.1, 0.25, 0.4, 0.499} {
		if m := verticalMask(ny, 0.3, 0.2); m != 0 {
			t.Errorf("expected maskVal 0 at ny=%f, got %f", ny, m)
		}
	}
	if m := verticalMask(0.6, 0.3, 0.2); math.Abs(m-0.5) > 1e-12 {
		t.Errorf("expected maskVal 0.5 mid-ramp, got %f", m)
	}
	for _, ny := range []float64{0.7, 0.8, 0.95} {
		if m := verticalMask(ny, 0.3, 0.2); m != 1 {
			t.Errorf("expected maskVal 1 at ny=%f, got %f", ny, m)
		}
	}
}

func TestSmoothMonotoneConvergence(t *testing.T) {
	const target = 0.8

	for _, k := range []float64{0.01, 0.08, 0.37, 1.0} {
		act := 0.0
		for i := 0; i < 5000; i++ {
			next := smooth(act, target, k)
			if next < act {
				t.Fatalf("k=%f: activation regressed at step %d: %v -> %v", k, i, act, next)
			}
			if next > target {
				t.Fatalf("k=%f: activation overshot at step %d: %v > %v", k, i, next, target)
			}
			act = next
		}
		if math.Abs(act-target) > 1e-9 {
			t.Errorf("k=%f: expected convergence to %f, got %v", k, target, act)
		}
	}
}

func TestSmoothFullWeightTracksExactly(t *testing.T) {
	if got := smooth(0.25, 0.9, 1.0); got != 0.9 {
		t.Errorf("k=1 should track target exactly, got %v", got)
	}
}

func TestComposeTargetClamped(t *testing.T) {
	macro := NewSampler("macro-cloud")
	micro := NewSampler("micro-texture")
	p := Params{
		MacroScale: 0.045, MacroThreshold: 0.58, MacroFeather: 0.22, MacroTimeScale: 0.06,
		MicroScale: 0.16, MicroThreshold: 0.52, MicroFeather: 0.3, MicroTimeScale: 0.13,
		DriftX: 1.4, DriftY: -0.35,
		BiasStrength: 5, // exaggerated so the clamp actually engages
		Gamma:        1.6,
	}

	for i := 0; i < 500; i++ {
		bias := float64(i%21)/10 - 1
		v := composeTarget(macro, micro, i%40, i/40, bias, float64(i)*0.13, p)
		if v < 0 || v > 1 {
			t.Fatalf("target %f outside [0,1] at i=%d", v, i)
		}
	}
}

func TestComposeTargetGamma(t *testing.T) {
	macro := NewSampler("macro-cloud")
	micro := NewSampler("micro-texture")
	p := Params{
		MacroScale: 0.045, MacroThreshold: 0.5, MacroFeather: 0.3, MacroTimeScale: 0.06,
		MicroScale: 0.16, MicroThreshold: 0.5, MicroFeather: 0.35, MicroTimeScale: 0.13,
		DriftX: 1.4, DriftY: -0.35,
		BiasStrength: 0.2,
		Gamma:        1,
	}

	for i := 0; i < 200; i++ {
		bias := float64(i%21)/10 - 1
		linear := composeTarget(macro, micro, i%20, i/20, bias, float64(i)*0.07, p)

		p2 := p
		p2.Gamma = 2
		squared := composeTarget(macro, micro, i%20, i/20, bias, float64(i)*0.07, p2)

		if math.Abs(squared-linear*linear) > 1e-12 {
			t.Fatalf("gamma=2 should square the gamma=1 signal: %v vs %v", squared, linear*linear)
		}
	}
}
