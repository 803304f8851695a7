// Package ui provides the on-screen HUD, telemetry readout, and the live
// parameter tuning panel for the wall.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme. Panel chrome picks up the wall
// palette: background-tinted panels, gold section headers, ember bar fill.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 16, G: 16, B: 22, A: 240},
		PanelBorder:    rl.Color{R: 46, G: 52, B: 64, A: 255},
		SectionHeader:  rl.Color{R: 235, G: 203, B: 139, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.Color{R: 216, G: 222, B: 233, A: 255},
		BarBg:          rl.Color{R: 36, G: 40, B: 50, A: 255},
		BarFill:        rl.Color{R: 208, G: 135, B: 112, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     60,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
