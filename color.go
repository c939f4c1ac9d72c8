package shade

import "image/color"

// RGB represents an opaque color with 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

// RGBA implements the color.Color interface. Alpha is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
// Premultiplied input is unpremultiplied first.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses a "#rrggbb" or "rrggbb" string. Case is ignored.
// Any other form, including "#rgb" shorthand, returns a *FormatError.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, &FormatError{Input: hex}
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, &FormatError{Input: hex}
		}
		v[i] = hi<<4 | lo
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// MustParseHex is like ParseHex but panics on error.
// Intended for package-level constants.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// hexDigit decodes one hexadecimal character.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

const lowerHex = "0123456789abcdef"

// Hex formats c as lowercase "#rrggbb".
func (c RGB) Hex() string {
	b := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = lowerHex[v>>4]
		b[2+2*i] = lowerHex[v&0x0f]
	}
	return string(b[:])
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// HSL converts c to hue/saturation/lightness.
func (c RGB) HSL() HSL { return RGBToHSL(c) }

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)
