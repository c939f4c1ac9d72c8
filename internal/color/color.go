// Package color provides the HSL color-space math behind shade.
//
// Values here are unvalidated: callers parse and format hex strings, this
// package only converts between channel triples and HSL.
package color

// ColorU8 represents an opaque sRGB color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B uint8
}

// HSL represents a color in hue/saturation/lightness form.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H, S, L float64
}

// Unit returns the components of c scaled to [0,1].
func (c ColorU8) Unit() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// Normalize wraps H into [0,360) and clamps S and L into [0,100].
// NaN components collapse to 0.
func (h HSL) Normalize() HSL {
	return HSL{
		H: wrapHue(h.H),
		S: clampPercent(h.S),
		L: clampPercent(h.L),
	}
}
