// Package theme derives stable per-user colours from names.
package theme

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf16"

	gcolor "github.com/gookit/color"
)

// HSLA is a colour with every component normalized to [0,1].
type HSLA struct {
	H float64
	S float64
	L float64
	A float64
}

// HSL converts the CSS notation (hue 0-360, saturation and lightness 0-100) to an opaque colour.
func HSL(hue, saturation, lightness float64) HSLA {
	return HSLAFromPercent(hue, saturation, lightness, 1)
}

// HSLAFromPercent converts hue 0-360, saturation 0-100, lightness 0-100 and alpha 0-1.
func HSLAFromPercent(hue, saturation, lightness, alpha float64) HSLA {
	return HSLA{H: hue / 360, S: saturation / 100, L: lightness / 100, A: alpha}
}

// HueFrom hashes the UTF-16 code units of s into a hue in [0,1).
// Different strings may share a hue.
func HueFrom(s string) float64 {
	hue := 0
	for _, unit := range utf16.Encode([]rune(s)) {
		hue += int(unit) * 99
	}
	return float64(hue%360) / 360
}

func (c HSLA) RGB() (r, g, b uint8) {
	rgb := gcolor.HslToRgb(clamp(c.H), clamp(c.S), clamp(c.L))
	if len(rgb) != 3 {
		return 0, 0, 0
	}
	return rgb[0], rgb[1], rgb[2]
}

func (c HSLA) alpha() uint8 {
	return uint8(math.Round(clamp(c.A) * 255))
}

func (c HSLA) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: c.alpha()}
}

// Hex returns #rrggbb for opaque colours and #aarrggbb otherwise.
func (c HSLA) Hex() string {
	r, g, b := c.RGB()
	if a := c.alpha(); a != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Sprint renders text with the colour as a 24-bit terminal foreground. Alpha is ignored.
func (c HSLA) Sprint(text string) string {
	r, g, b := c.RGB()
	return gcolor.RGB(r, g, b).Sprint(text)
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
