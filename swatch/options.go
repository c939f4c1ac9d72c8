package swatch

import "github.com/gogpu/shade"

// Option configures a swatch sheet.
//
// Example:
//
//	img, err := swatch.Render(shades, swatch.WithColumns(10), swatch.WithLabels(false))
type Option func(*options)

// options holds the layout and styling of a sheet.
type options struct {
	columns    int
	cellWidth  float64
	cellHeight float64
	gap        float64
	radius     float64
	border     shade.RGB
	borderW    float64
	background shade.RGB
	labelColor shade.RGB
	labels     bool
	fontSize   float64
}

// defaultOptions mirrors a five-column grid of 56x96 rounded cards.
func defaultOptions() options {
	return options{
		columns:    5,
		cellWidth:  56,
		cellHeight: 96,
		gap:        8,
		radius:     8,
		border:     shade.RGB{R: 0x9c, G: 0xa3, B: 0xaf},
		borderW:    1,
		background: shade.White,
		labelColor: shade.RGB{R: 0x37, G: 0x41, B: 0x51},
		labels:     true,
		fontSize:   11,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColumns sets the number of cells per row. Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithCellSize sets the size of each color cell in pixels.
func WithCellSize(w, h float64) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.cellWidth, o.cellHeight = w, h
		}
	}
}

// WithGap sets the spacing between cells and around the sheet.
func WithGap(g float64) Option {
	return func(o *options) {
		if g >= 0 {
			o.gap = g
		}
	}
}

// WithRadius sets the corner radius of each cell. Zero draws square cells.
func WithRadius(r float64) Option {
	return func(o *options) {
		if r >= 0 {
			o.radius = r
		}
	}
}

// WithBorder sets the cell outline color and width. A zero width disables it.
func WithBorder(c shade.RGB, width float64) Option {
	return func(o *options) {
		o.border = c
		if width >= 0 {
			o.borderW = width
		}
	}
}

// WithBackground sets the sheet background.
func WithBackground(c shade.RGB) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLabels toggles the hex label printed under each cell.
func WithLabels(enabled bool) Option {
	return func(o *options) {
		o.labels = enabled
	}
}

// WithLabelColor sets the label text color.
func WithLabelColor(c shade.RGB) Option {
	return func(o *options) {
		o.labelColor = c
	}
}

// WithFontSize sets the label size in points.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}
