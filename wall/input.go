package wall

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
)

// handleInput processes keyboard input.
func (w *Wall) handleInput(cfg *config.Config) {
	// Window resize propagation
	w.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		w.paused = !w.paused
	}

	// Motion toggle: off holds the frozen pattern but keeps smoothing
	if rl.IsKeyPressed(rl.KeyM) {
		cfg.Animation.Motion = !cfg.Animation.Motion
	}

	// Debug view: raw activation as grayscale
	if rl.IsKeyPressed(rl.KeyD) {
		cfg.Animation.DebugView = !cfg.Animation.DebugView
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		w.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyT) {
		w.showStats = !w.showStats
	}
}

// handleResize checks for window resize and relays the new surface size.
func (w *Wall) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	width := float64(rl.GetScreenWidth())
	height := float64(rl.GetScreenHeight())
	if width == w.screenWidth && height == w.screenHeight {
		return
	}
	w.screenWidth = width
	w.screenHeight = height
	w.needsRebuild = true

	w.panel.SetPosition(int32(width)-panelWidth-panelMargin, panelMargin)
}
