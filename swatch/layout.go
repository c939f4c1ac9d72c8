package swatch

import "math"

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Geometry is the computed layout of a sheet.
type Geometry struct {
	Columns int
	Rows    int
	Width   int
	Height  int
	// Cells holds one rectangle per shade in row-major order.
	Cells []Rect
	// Labels holds the label box under each cell. Empty without labels.
	Labels []Rect
}

// Layout computes the grid for n shades. It does not draw anything.
func Layout(n int, opts ...Option) Geometry {
	return layout(n, applyOptions(opts))
}

func layout(n int, o options) Geometry {
	if n <= 0 {
		return Geometry{}
	}

	cols := min(o.columns, n)
	rows := (n + cols - 1) / cols

	labelH := 0.0
	if o.labels {
		labelH = math.Ceil(o.fontSize * 1.8)
	}
	rowH := o.cellHeight + labelH

	g := Geometry{
		Columns: cols,
		Rows:    rows,
		Width:   int(math.Ceil(o.gap + float64(cols)*(o.cellWidth+o.gap))),
		Height:  int(math.Ceil(o.gap + float64(rows)*(rowH+o.gap))),
		Cells:   make([]Rect, n),
	}
	if o.labels {
		g.Labels = make([]Rect, n)
	}

	for i := range n {
		col, row := i%cols, i/cols
		x := o.gap + float64(col)*(o.cellWidth+o.gap)
		y := o.gap + float64(row)*(rowH+o.gap)
		g.Cells[i] = Rect{X: x, Y: y, W: o.cellWidth, H: o.cellHeight}
		if o.labels {
			g.Labels[i] = Rect{X: x, Y: y + o.cellHeight, W: o.cellWidth, H: labelH}
		}
	}
	return g
}
