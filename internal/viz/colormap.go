package viz

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
)

const paletteSize = 256

// palette is a diverging ramp rebuilt whenever the theme changes.
// Index 0 is the most negative potential, the midpoint is white, and the
// top is the most positive.
var palette [paletteSize]color.RGBA

func init() {
	buildPalette(CurrentTheme)
}

// buildPalette fills the ramp for a theme. Saturation peaks at the ends and
// fades to white at the midpoint.
func buildPalette(th Theme) {
	for i := range palette {
		t := float64(i) / float64(paletteSize-1)
		if th.Grayscale {
			g := uint8(255*t + 0.5)
			palette[i] = color.RGBA{R: g, G: g, B: g, A: 255}
			continue
		}
		hue, sat := th.NegativeHue, 1-2*t
		if t >= 0.5 {
			hue, sat = th.PositiveHue, 2*t-1
		}
		r, g, b, _ := colorconv.HSVToRGB(hue, sat, 1-0.1*sat)
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
}

// PotentialColor maps a normalized potential in [0, 1] onto the diverging
// palette. Out-of-range values clip to the endpoints.
func PotentialColor(t float64) color.RGBA {
	idx := int(t * float64(paletteSize-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= paletteSize {
		idx = paletteSize - 1
	}
	return palette[idx]
}

// PotentialHex returns the palette entry as a #rrggbb string for terminal
// and SVG rendering.
func PotentialHex(t float64) string {
	c := PotentialColor(t)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	positiveColor = color.RGBA{R: 226, G: 61, B: 45, A: 255}
	negativeColor = color.RGBA{R: 59, G: 106, B: 224, A: 255}
	neutralColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// ChargeColor picks the marker color for a charge sign: red for positive,
// blue for negative, gray for zero.
func ChargeColor(sign int) color.RGBA {
	switch {
	case sign > 0:
		return positiveColor
	case sign < 0:
		return negativeColor
	}
	return neutralColor
}

// ChargeHex is ChargeColor as a #rrggbb string.
func ChargeHex(sign int) string {
	c := ChargeColor(sign)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
