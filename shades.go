package shade

// MinCount is the smallest shade count Generate accepts.
// Interpolation divides by count-1, so a single shade has no defined step.
const MinCount = 2

// Shades is an ordered set of lowercase "#rrggbb" colors.
// Index 0 is the lightest (white) and the last index is black.
type Shades []string

// Generate returns count shades of baseHex ordered from white to black.
//
// The base color's hue and saturation are held fixed while lightness
// steps linearly from 100 to 0 inclusive:
//
//	lightness(i) = 100 - i/(count-1)*100
//
// Generate returns a *FormatError if baseHex is malformed and a
// *CountError if count < MinCount. It never returns a partial set.
func Generate(baseHex string, count int) (Shades, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return nil, err
	}
	return GenerateRGB(base, count)
}

// GenerateRGB is like Generate for an already parsed base color.
func GenerateRGB(base RGB, count int) (Shades, error) {
	if count < MinCount {
		return nil, &CountError{Count: count}
	}

	hsl := base.HSL()
	steps := float64(count - 1)
	out := make(Shades, count)
	for i := range out {
		l := 100 - float64(float64(i)/steps)*100
		out[i] = HSL{H: hsl.H, S: hsl.S, L: l}.Hex()
	}
	return out, nil
}

// Lightness returns the HSL lightness of each shade.
// Entries that fail to parse report -1.
func (s Shades) Lightness() []float64 {
	out := make([]float64, len(s))
	for i, hex := range s {
		c, err := ParseHex(hex)
		if err != nil {
			out[i] = -1
			continue
		}
		out[i] = c.HSL().L
	}
	return out
}

// RGB parses every shade. It fails on the first malformed entry.
func (s Shades) RGB() ([]RGB, error) {
	out := make([]RGB, len(s))
	for i, hex := range s {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
