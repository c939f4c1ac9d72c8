package shade

import (
	"fmt"

	icolor "github.com/gogpu/shade/internal/color"
)

// HSL represents a color as hue, saturation and lightness.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H, S, L float64
}

// Normalize wraps H into [0,360) and clamps S and L into [0,100].
func (h HSL) Normalize() HSL {
	n := icolor.HSL(h).Normalize()
	return HSL(n)
}

// RGB converts h to an 8-bit color. h is normalized first.
func (h HSL) RGB() RGB {
	c := icolor.HSLToRGB(icolor.HSL(h))
	return RGB(c)
}

// Hex converts h to a lowercase "#rrggbb" string.
func (h HSL) Hex() string { return h.RGB().Hex() }

// String formats h in CSS hsl() notation.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.2f, %.2f%%, %.2f%%)", h.H, h.S, h.L)
}

// RGBToHSL converts c to HSL. It is total over all RGB values.
func RGBToHSL(c RGB) HSL {
	return HSL(icolor.RGBToHSL(icolor.ColorU8(c)))
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to a
// lowercase "#rrggbb" string. Out-of-range input is wrapped or clamped.
func HSLToHex(h, s, l float64) string {
	return HSL{H: h, S: s, L: l}.Hex()
}
