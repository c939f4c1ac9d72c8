package palette

import (
	"math"

	"github.com/gogpu/shade"
)

// Palette is a shade set together with the inputs that produced it.
type Palette struct {
	// Base is the base color, canonicalized to lowercase "#rrggbb".
	Base string
	// Count is the number of shades requested.
	Count int
	// Shades is the generated set, lightest first.
	Shades shade.Shades
}

// Entry is one shade with its position and lightness.
type Entry struct {
	Index     int     `json:"index" yaml:"index"`
	Hex       string  `json:"hex" yaml:"hex"`
	Lightness float64 `json:"lightness" yaml:"lightness"`
}

// New generates count shades of base.
// Errors from shade.Generate are returned unchanged.
func New(base string, count int) (Palette, error) {
	c, err := shade.ParseHex(base)
	if err != nil {
		return Palette{}, err
	}
	shades, err := shade.GenerateRGB(c, count)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Base: c.Hex(), Count: count, Shades: shades}, nil
}

// Len returns the number of shades.
func (p Palette) Len() int { return len(p.Shades) }

// At returns the shade at index i.
func (p Palette) At(i int) (string, bool) {
	if i < 0 || i >= len(p.Shades) {
		return "", false
	}
	return p.Shades[i], true
}

// Entries returns every shade with its index and HSL lightness.
func (p Palette) Entries() []Entry {
	ls := p.Shades.Lightness()
	out := make([]Entry, len(p.Shades))
	for i, hex := range p.Shades {
		out[i] = Entry{Index: i, Hex: hex, Lightness: roundTo(ls[i], 2)}
	}
	return out
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
