package field

import "math"

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep eases val through the band of half-width feather centered on
// thr, using the cubic Hermite 3t²-2t³. Output is monotone in val and stays
// in [0,1] for any real input.
func smoothstep(val, thr, feather float64) float64 {
	band := clamp01((val - (thr - feather)) / (2 * feather))
	return band * band * (3 - 2*band)
}

// verticalMask is the row visibility multiplier for normalized vertical
// position ny (0 at the top row). height is the visible fraction measured
// from the bottom; the mask ramps in over the featherY band below the
// visibility threshold and saturates at it, so height=1 keeps every row at
// full visibility.
func verticalMask(ny, height, featherY float64) float64 {
	thr := 1 - height
	return clamp01(1 + (ny-thr)/featherY)
}

// smooth advances current toward target by the per-frame EMA weight k in
// (0,1]. k=1 tracks the target exactly with no lag. Approach is monotone and
// never overshoots.
func smooth(current, target, k float64) float64 {
	return current + (target-current)*k
}

// composeTarget produces a cell's target activation at time t: the macro
// cloud mask gated by the micro texture mask, nudged by the cell's bias,
// clamped and gamma-shaped. Both fields are sampled at the same advected
// position so the fine texture travels with the coarse cloud. Pure function
// of its inputs.
func composeTarget(macro, micro *Sampler, x, y int, bias, t float64, p Params) float64 {
	ax := float64(x) + t*p.DriftX
	ay := float64(y) + t*p.DriftY

	m := macro.Sample(ax*p.MacroScale, ay*p.MacroScale, t*p.MacroTimeScale)
	macroMask := smoothstep((m+1)*0.5, p.MacroThreshold, p.MacroFeather)

	u := micro.Sample(ax*p.MicroScale, ay*p.MicroScale, t*p.MicroTimeScale)
	microMask := smoothstep((u+1)*0.5, p.MicroThreshold, p.MicroFeather)

	signal := clamp01(macroMask*microMask + bias*p.BiasStrength)
	if p.Gamma != 1 {
		signal = math.Pow(signal, p.Gamma)
	}
	return signal
}
