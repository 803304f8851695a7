// Signal preview tool - interactive visualization with sliders.
//
// Renders the composed activation field (macro band x micro band, bias,
// gamma) on a dense one-pixel grid, using the same engine the wall runs.
//
// Usage: go run ./cmd/signalpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/field"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// SignalParams holds the field parameters under tuning.
type SignalParams struct {
	MacroScale     float32
	MacroThreshold float32
	MacroFeather   float32
	MacroSpeed     float32
	MicroScale     float32
	MicroThreshold float32
	MicroFeather   float32
	MicroSpeed     float32
	DriftX         float32
	DriftY         float32
	Gamma          float32
	BiasStrength   float32
}

func defaultSignalParams() SignalParams {
	return SignalParams{
		MacroScale:     0.045,
		MacroThreshold: 0.58,
		MacroFeather:   0.22,
		MacroSpeed:     0.06,
		MicroScale:     0.16,
		MicroThreshold: 0.52,
		MicroFeather:   0.30,
		MicroSpeed:     0.13,
		DriftX:         1.4,
		DriftY:         -0.35,
		Gamma:          1.6,
		BiasStrength:   0.18,
	}
}

// engineParams maps the tuning state onto a one-pixel-per-cell engine setup:
// no gaps, no mask, no temporal smoothing, grayscale output.
func engineParams(sp SignalParams) field.Params {
	return field.Params{
		CellSize:       1,
		Gap:            0,
		MacroScale:     float64(sp.MacroScale),
		MacroThreshold: float64(sp.MacroThreshold),
		MacroFeather:   float64(sp.MacroFeather),
		MacroTimeScale: float64(sp.MacroSpeed),
		MicroScale:     float64(sp.MicroScale),
		MicroThreshold: float64(sp.MicroThreshold),
		MicroFeather:   float64(sp.MicroFeather),
		MicroTimeScale: float64(sp.MicroSpeed),
		DriftX:         float64(sp.DriftX),
		DriftY:         float64(sp.DriftY),
		BiasStrength:   float64(sp.BiasStrength),
		Gamma:          float64(sp.Gamma),
		Smoothing:      1,
		MaskHeight:     1,
		MaskFeatherY:   0.2,
		TimeScale:      1,
		DebugView:      true,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Signal Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultSignalParams()

	// One engine cell per texel
	gridSize := 256
	eng := field.New(field.DefaultPalette())
	eng.Rebuild(float64(gridSize), float64(gridSize), engineParams(params))

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	// Time for animation
	var time float32 = 0
	animating := false

	// Generate initial field
	updateTexture(texture, eng, gridSize, params, time)

	// GUI state
	needsRegen := false

	for !rl.WindowShouldClose() {
		// Animation
		if animating {
			time += rl.GetFrameTime()
			needsRegen = true
		}

		// Regenerate if needed
		if needsRegen {
			updateTexture(texture, eng, gridSize, params, time)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Activation stats
		var sum float64
		var minVal, maxVal = 1.0, 0.0
		activation := eng.Grid().Activation
		for _, v := range activation {
			sum += v
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		avg := sum / float64(len(activation))

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f", minVal, maxVal, avg), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f", time), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Signal Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 30

		panelY = sliderGroup(panelX, panelY, "Macro (cloud shape)", []sliderDef{
			{"scale", &params.MacroScale, 0.005, 0.2, "%.3f", &needsRegen},
			{"threshold", &params.MacroThreshold, 0, 1, "%.2f", &needsRegen},
			{"feather", &params.MacroFeather, 0.01, 0.4, "%.2f", &needsRegen},
			{"speed", &params.MacroSpeed, 0, 0.3, "%.3f", &needsRegen},
		})

		panelY = sliderGroup(panelX, panelY, "Micro (texture)", []sliderDef{
			{"scale", &params.MicroScale, 0.02, 0.8, "%.3f", &needsRegen},
			{"threshold", &params.MicroThreshold, 0, 1, "%.2f", &needsRegen},
			{"feather", &params.MicroFeather, 0.01, 0.4, "%.2f", &needsRegen},
			{"speed", &params.MicroSpeed, 0, 0.5, "%.3f", &needsRegen},
		})

		panelY = sliderGroup(panelX, panelY, "Drift & shaping", []sliderDef{
			{"drift X", &params.DriftX, -4, 4, "%.2f", &needsRegen},
			{"drift Y", &params.DriftY, -4, 4, "%.2f", &needsRegen},
			{"gamma", &params.Gamma, 0.2, 4, "%.2f", &needsRegen},
			{"bias", &params.BiasStrength, 0, 1, "%.2f", &needsRegen},
		})

		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			time = 0
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultSignalParams()
			time = 0
			needsRegen = true
		}
		panelY += 45

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 12, rl.Gray)
			panelY += 14
		}

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText(params))
		}

		rl.EndDrawing()
	}
}

// sliderDef describes one slider row: label, bound value, range, and the
// regen flag to raise on change.
type sliderDef struct {
	label  string
	value  *float32
	min    float32
	max    float32
	format string
	regen  *bool
}

// sliderGroup draws a header plus slider rows and returns the next Y.
func sliderGroup(x, y float32, title string, defs []sliderDef) float32 {
	rl.DrawText(title, int32(x), int32(y), 14, rl.DarkGray)
	y += 20

	for _, d := range defs {
		rl.DrawText(d.label, int32(x), int32(y+2), 12, rl.Gray)
		next := gui.SliderBar(
			rl.Rectangle{X: x + 70, Y: y, Width: float32(panelWidth - 150), Height: 16},
			"", "",
			*d.value, d.min, d.max,
		)
		rl.DrawText(fmt.Sprintf(d.format, next), int32(x)+int32(panelWidth-70), int32(y+2), 12, rl.DarkGray)
		if next != *d.value {
			*d.value = next
			*d.regen = true
		}
		y += 24
	}

	return y + 6
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func yamlLines(p SignalParams) []string {
	return []string{
		"macro:",
		fmt.Sprintf("  scale: %.3f", p.MacroScale),
		fmt.Sprintf("  threshold: %.2f", p.MacroThreshold),
		fmt.Sprintf("  feather: %.2f", p.MacroFeather),
		fmt.Sprintf("  time_scale: %.3f", p.MacroSpeed),
		"micro:",
		fmt.Sprintf("  scale: %.3f", p.MicroScale),
		fmt.Sprintf("  threshold: %.2f", p.MicroThreshold),
		fmt.Sprintf("  feather: %.2f", p.MicroFeather),
		fmt.Sprintf("  time_scale: %.3f", p.MicroSpeed),
		"drift:",
		fmt.Sprintf("  x: %.2f", p.DriftX),
		fmt.Sprintf("  y: %.2f", p.DriftY),
		"signal:",
		fmt.Sprintf("  gamma: %.2f", p.Gamma),
		fmt.Sprintf("  bias_strength: %.2f", p.BiasStrength),
	}
}

func yamlText(p SignalParams) string {
	text := ""
	for _, line := range yamlLines(p) {
		text += line + "\n"
	}
	return text
}

// updateTexture renders one engine frame and maps activation to a heat ramp.
func updateTexture(texture rl.Texture2D, eng *field.Engine, size int, sp SignalParams, t float32) {
	cells := eng.Frame(float64(t), true, engineParams(sp))

	pixels := make([]color.RGBA, size*size)
	for _, c := range cells {
		x := int(c.X)
		y := int(c.Y)
		pixels[y*size+x] = heatColor(float64(c.Color.R) / 255)
	}
	rl.UpdateTexture(texture, pixels)
}

// heatColor maps [0,1] onto slate, teal, amber, white.
func heatColor(v float64) color.RGBA {
	var r, g, b uint8
	switch {
	case v < 0.35:
		t := v / 0.35
		r = uint8(16 + t*48)
		g = uint8(18 + t*110)
		b = uint8(28 + t*120)
	case v < 0.7:
		t := (v - 0.35) / 0.35
		r = uint8(64 + t*171)
		g = uint8(128 + t*75)
		b = uint8(148 - t*9)
	default:
		t := (v - 0.7) / 0.3
		r = uint8(235 + t*20)
		g = uint8(203 + t*52)
		b = uint8(139 + t*116)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
