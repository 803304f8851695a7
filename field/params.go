package field

// Params is the flat per-frame parameter snapshot the engine consumes.
// Callers own it and pass it by value; the engine never mutates it. A frame
// reads one snapshot throughout, so live edits from a tuning panel cannot
// tear a frame mid-computation.
//
// CellSize, Gap, AccentAProb and AccentBProb define cell identity: changing
// any of them requires a Rebuild. Everything else takes effect on the next
// Frame.
type Params struct {
	// Geometry
	CellSize float64
	Gap      float64

	// Accent assignment
	AccentAProb float64
	AccentBProb float64

	// Macro field: the coarse drifting cloud
	MacroScale     float64
	MacroThreshold float64
	MacroFeather   float64
	MacroTimeScale float64

	// Micro field: fine texture gating the cloud
	MicroScale     float64
	MicroThreshold float64
	MicroFeather   float64
	MicroTimeScale float64

	// Shared advection velocity, cells per second. One vector drives both
	// fields so the texture travels with the cloud.
	DriftX float64
	DriftY float64

	// Activation shaping
	BiasStrength     float64
	Gamma            float64
	Smoothing        float64
	ColorMixStrength float64

	// Opacity. BaseAlpha + ActiveAlphaBoost should stay within 1; the
	// resolver does not re-clamp.
	BaseAlpha        float64
	ActiveAlphaBoost float64

	// Vertical visibility band
	MaskHeight   float64
	MaskFeatherY float64

	// Host time units to engine seconds
	TimeScale float64

	// Grayscale activation view
	DebugView bool
}
