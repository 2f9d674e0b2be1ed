// Package render turns composed moiré fields into false-color images and
// diagnostic plots. It owns the viridis palette and all gonum/plot wiring;
// no field math lives here.
package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// viridisStops are the anchor colors of the viridis colormap, dark purple to
// yellow. Intermediate palette entries are linearly interpolated in RGB.
var viridisStops = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x48, G: 0x27, B: 0x77, A: 0xff},
	{R: 0x3e, G: 0x49, B: 0x89, A: 0xff},
	{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	{R: 0x26, G: 0x82, B: 0x8e, A: 0xff},
	{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
	{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	{R: 0x6e, G: 0xce, B: 0x58, A: 0xff},
	{R: 0xb5, G: 0xde, B: 0x2b, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

type viridisPalette struct {
	colors []color.Color
}

// Colors implements palette.Palette.
func (p viridisPalette) Colors() []color.Color { return p.colors }

// Viridis returns an n-color viridis palette. n < 2 is raised to 2 so the
// palette always spans the full ramp.
func Viridis(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	segments := len(viridisStops) - 1
	for i := range colors {
		t := float64(i) / float64(n-1) * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		frac := t - float64(seg)
		a, b := viridisStops[seg], viridisStops[seg+1]
		colors[i] = color.RGBA{
			R: lerpByte(a.R, b.R, frac),
			G: lerpByte(a.G, b.G, frac),
			B: lerpByte(a.B, b.B, frac),
			A: 0xff,
		}
	}
	return viridisPalette{colors: colors}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
