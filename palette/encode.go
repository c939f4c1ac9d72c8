package palette

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shade"
)

// DefaultCSSPrefix names the CSS custom properties: --shade-0, --shade-1, ...
const DefaultCSSPrefix = "shade"

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	color     bool
	cssPrefix string
	name      string
	columns   int
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		cssPrefix: DefaultCSSPrefix,
		columns:   5,
	}
}

// WithColor prints a truecolor background swatch before each text line.
// The swatch is written even when stdout is not a terminal, so callers
// decide (for example from color.NoColor).
func WithColor(enabled bool) EncodeOption {
	return func(o *encodeOptions) {
		o.color = enabled
	}
}

// WithCSSPrefix sets the custom property prefix for FormatCSS.
// Empty values keep DefaultCSSPrefix.
func WithCSSPrefix(prefix string) EncodeOption {
	return func(o *encodeOptions) {
		if prefix != "" {
			o.cssPrefix = prefix
		}
	}
}

// WithName sets the palette name written by FormatGPL.
// Defaults to "shade <base>".
func WithName(name string) EncodeOption {
	return func(o *encodeOptions) {
		o.name = name
	}
}

// WithColumns sets the column hint written by FormatGPL.
func WithColumns(n int) EncodeOption {
	return func(o *encodeOptions) {
		if n > 0 {
			o.columns = n
		}
	}
}

// document is the JSON and YAML shape of a palette.
type document struct {
	Base   string  `json:"base" yaml:"base"`
	Count  int     `json:"count" yaml:"count"`
	Shades []Entry `json:"shades" yaml:"shades"`
}

// Encode writes p to w in format f.
func Encode(w io.Writer, p Palette, f Format, opts ...EncodeOption) error {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	var err error
	switch f {
	case FormatText:
		err = encodeText(bw, p, o)
	case FormatJSON:
		enc := json.NewEncoder(bw)
		enc.SetIndent("", "  ")
		err = enc.Encode(newDocument(p))
	case FormatYAML:
		enc := yaml.NewEncoder(bw)
		enc.SetIndent(2)
		if err = enc.Encode(newDocument(p)); err == nil {
			err = enc.Close()
		}
	case FormatCSS:
		err = encodeCSS(bw, p, o)
	case FormatGPL:
		err = encodeGPL(bw, p, o)
	default:
		return fmt.Errorf("%w %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("palette: encode %s: %w", f, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("palette: encode %s: %w", f, err)
	}

	shade.Logger().Debug("palette encoded", "format", f.String(), "base", p.Base, "shades", p.Len())
	return nil
}

func newDocument(p Palette) document {
	return document{Base: p.Base, Count: p.Count, Shades: p.Entries()}
}

func encodeText(w io.Writer, p Palette, o encodeOptions) error {
	width := len(fmt.Sprint(p.Len() - 1))
	for _, e := range p.Entries() {
		if o.color {
			sw, err := swatch(e.Hex)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprint(w, sw, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%*d  %s  L=%.2f\n", width, e.Index, e.Hex, e.Lightness); err != nil {
			return err
		}
	}
	return nil
}

// swatch renders a short block with hex as its truecolor background.
func swatch(hex string) (string, error) {
	c, err := shade.ParseHex(hex)
	if err != nil {
		return "", err
	}
	bg := color.BgRGB(int(c.R), int(c.G), int(c.B))
	bg.EnableColor()
	return bg.Sprint("      "), nil
}

func encodeCSS(w io.Writer, p Palette, o encodeOptions) error {
	if _, err := fmt.Fprintf(w, "/* %d shades of %s */\n:root {\n", p.Len(), p.Base); err != nil {
		return err
	}
	for i, hex := range p.Shades {
		if _, err := fmt.Fprintf(w, "  --%s-%d: %s;\n", o.cssPrefix, i, hex); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func encodeGPL(w io.Writer, p Palette, o encodeOptions) error {
	name := o.name
	if name == "" {
		name = "shade " + p.Base
	}
	if _, err := fmt.Fprintf(w, "GIMP Palette\nName: %s\nColumns: %d\n#\n", name, o.columns); err != nil {
		return err
	}
	rgbs, err := p.Shades.RGB()
	if err != nil {
		return err
	}
	for i, c := range rgbs {
		if _, err := fmt.Fprintf(w, "%3d %3d %3d\t%s-%d\n", c.R, c.G, c.B, o.cssPrefix, i); err != nil {
			return err
		}
	}
	return nil
}
