package color

import "math"

// RGBToHSL converts c to HSL.
//
// Lightness is the midpoint of the largest and smallest unit channel.
// Achromatic colors (all channels equal) get zero hue and saturation.
// The result is always normalized.
func RGBToHSL(c ColorU8) HSL {
	r, g, b := c.Unit()

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	// Hue in sextants, keyed by the dominant channel.
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}.Normalize()
}

// HSLToRGB converts hsl to an 8-bit color.
//
// Each channel is l - a*clamp(min(k-3, 9-k, 1), -1, 1) with
// k = (n + h/30) mod 12 for n in {0, 8, 4} and a = S*min(l, 1-l)/100.
// The clamp keeps every channel inside [0,1] before scaling.
func HSLToRGB(hsl HSL) ColorU8 {
	hsl = hsl.Normalize()
	l := hsl.L / 100
	// S is scaled after the product so half-way channels round the same
	// way on every platform and in every implementation of the formula.
	a := float64(hsl.S*math.Min(l, 1-l)) / 100

	return ColorU8{
		R: channel(0, hsl.H, a, l),
		G: channel(8, hsl.H, a, l),
		B: channel(4, hsl.H, a, l),
	}
}

// channel evaluates one k-offset term of the HSL reconstruction.
func channel(n, h, a, l float64) uint8 {
	k := math.Mod(n+h/30, 12)
	f := math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
	return clampAndRound(l - float64(a*f))
}

// clampAndRound clamps a float64 to [0,1] and converts to uint8,
// rounding halves up.
func clampAndRound(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(float64(v*255.0) + 0.5))
}

// wrapHue maps any finite angle into [0,360).
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// clampPercent restricts v to [0,100].
func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
