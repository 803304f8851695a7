package field

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Palette holds the four wall colors, parsed once and cached until the
// caller refreshes them.
type Palette struct {
	Background RGB
	Base       RGB
	AccentA    RGB
	AccentB    RGB
}

// DefaultPalette is the built-in ember palette, used as the fallback when
// configured color strings fail to parse.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB{0x10, 0x10, 0x14},
		Base:       RGB{0x2e, 0x34, 0x40},
		AccentA:    RGB{0xd0, 0x87, 0x70},
		AccentB:    RGB{0xeb, 0xcb, 0x8b},
	}
}

// ParsePalette builds a palette from "#rrggbb" hex strings.
func ParsePalette(background, base, accentA, accentB string) (Palette, error) {
	var pal Palette
	var err error
	if pal.Background, err = parseHex(background); err != nil {
		return Palette{}, fmt.Errorf("parsing background color: %w", err)
	}
	if pal.Base, err = parseHex(base); err != nil {
		return Palette{}, fmt.Errorf("parsing base color: %w", err)
	}
	if pal.AccentA, err = parseHex(accentA); err != nil {
		return Palette{}, fmt.Errorf("parsing accent A color: %w", err)
	}
	if pal.AccentB, err = parseHex(accentB); err != nil {
		return Palette{}, fmt.Errorf("parsing accent B color: %w", err)
	}
	return pal, nil
}

func parseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Resolve maps a cell's color class, smoothed activation, and row visibility
// into the final fill color and alpha. Base cells keep the base color
// unconditionally; accent cells mix toward their accent as activation rises.
// Alpha is not re-clamped: BaseAlpha + ActiveAlphaBoost must stay within 1.
func (pal Palette) Resolve(class ColorClass, activation, maskVal float64, p Params) (RGB, float64) {
	if p.DebugView {
		// Raw activation as grayscale, alpha forced opaque.
		v := uint8(activation * 255 * maskVal)
		return RGB{v, v, v}, 1
	}

	c := pal.Base
	if class != Base {
		accent := pal.AccentA
		if class == AccentB {
			accent = pal.AccentB
		}
		mix := clamp01(activation * p.ColorMixStrength)
		switch {
		case mix < 0.01:
			// stays base
		case mix > 0.99:
			c = accent
		default:
			c = lerpRGB(pal.Base, accent, mix)
		}
	}
	alpha := (p.BaseAlpha + activation*p.ActiveAlphaBoost) * maskVal
	return c, alpha
}

// lerpRGB interpolates each channel independently, rounding to nearest.
func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
