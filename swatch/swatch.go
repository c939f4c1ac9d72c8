// Package swatch renders shade sets as PNG swatch sheets.
//
// Sheets are drawn with the gg software rasterizer: one rounded, outlined
// card per shade in a fixed-column grid, each optionally labeled with its
// hex value in Go Regular.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/shade"
)

// ErrNoShades is returned when asked to render an empty set.
var ErrNoShades = errors.New("swatch: no shades to render")

// labelFont parses the embedded Go Regular font once per process.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Render draws shades onto a new image.
// Every entry must be a valid hex color.
func Render(shades shade.Shades, opts ...Option) (image.Image, error) {
	dc, err := draw(shades, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Encode renders shades and writes the sheet to w as PNG.
func Encode(w io.Writer, shades shade.Shades, opts ...Option) error {
	dc, err := draw(shades, applyOptions(opts))
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("swatch: encode png: %w", err)
	}
	return nil
}

// Save renders shades to a PNG file at path.
// Nothing is left at path when rendering or writing fails.
func Save(path string, shades shade.Shades, opts ...Option) (err error) {
	dc, err := draw(shades, applyOptions(opts))
	if err != nil {
		return err
	}
	defer dc.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("swatch: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("swatch: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := dc.EncodePNG(f); err != nil {
		return fmt.Errorf("swatch: encode png: %w", err)
	}
	return nil
}

func draw(shades shade.Shades, o options) (*gg.Context, error) {
	if len(shades) == 0 {
		return nil, ErrNoShades
	}
	colors, err := shades.RGB()
	if err != nil {
		return nil, fmt.Errorf("swatch: %w", err)
	}

	geo := layout(len(colors), o)
	shade.Logger().Debug("swatch render",
		"shades", len(colors), "columns", geo.Columns, "rows", geo.Rows,
		"width", geo.Width, "height", geo.Height)

	dc := gg.NewContext(geo.Width, geo.Height)
	dc.ClearWithColor(gg.FromColor(o.background))

	for i, c := range colors {
		cell := geo.Cells[i]
		dc.SetColor(c)
		cellPath(dc, cell, o.radius)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("swatch: fill cell %d: %w", i, err)
		}

		if o.borderW > 0 {
			dc.SetColor(o.border)
			dc.SetLineWidth(o.borderW)
			cellPath(dc, cell, o.radius)
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("swatch: outline cell %d: %w", i, err)
			}
		}
	}

	if o.labels {
		if err := drawLabels(dc, shades, geo, o); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

func cellPath(dc *gg.Context, r Rect, radius float64) {
	if radius > 0 {
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

func drawLabels(dc *gg.Context, shades shade.Shades, geo Geometry, o options) error {
	src, err := labelFont()
	if err != nil {
		return fmt.Errorf("swatch: load label font: %w", err)
	}
	dc.SetFont(src.Face(o.fontSize))
	dc.SetColor(o.labelColor)
	for i, hex := range shades {
		x, y := geo.Labels[i].Center()
		dc.DrawStringAnchored(hex, x, y, 0.5, 0.5)
	}
	return nil
}
