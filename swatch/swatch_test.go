package swatch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shade"
)

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func pixelAt(img image.Image, x, y float64) shade.RGB {
	return shade.FromColor(img.At(int(x), int(y)))
}

func TestRenderFillsCells(t *testing.T) {
	shades, err := shade.Generate("#3366cc", 5)
	if err != nil {
		t.Fatal(err)
	}
	opts := []Option{WithLabels(false), WithColumns(5)}
	img, err := Render(shades, opts...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	geo := Layout(len(shades), opts...)
	if b := img.Bounds(); b.Dx() != geo.Width || b.Dy() != geo.Height {
		t.Fatalf("bounds = %v, want %dx%d", b, geo.Width, geo.Height)
	}

	for i, hex := range shades {
		x, y := geo.Cells[i].Center()
		if got := pixelAt(img, x, y); got.Hex() != hex {
			t.Errorf("cell %d center = %s, want %s", i, got.Hex(), hex)
		}
	}

	// The margin keeps the background color.
	if got := pixelAt(img, 1, 1); got != shade.White {
		t.Errorf("background = %s, want #ffffff", got.Hex())
	}
}

func TestRenderBackground(t *testing.T) {
	bg := shade.MustParseHex("#101820")
	img, err := Render(shade.Shades{"#ffffff", "#000000"}, WithBackground(bg), WithLabels(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(img, 0, 0); got != bg {
		t.Errorf("background = %s, want %s", got.Hex(), bg.Hex())
	}
}

func TestRenderWithLabels(t *testing.T) {
	shades := shade.Shades{"#ffffff", "#808080", "#000000"}
	img, err := Render(shades)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	geo := Layout(len(shades))
	if b := img.Bounds(); b.Dx() != geo.Width || b.Dy() != geo.Height {
		t.Fatalf("bounds = %v, want %dx%d", b, geo.Width, geo.Height)
	}

	// At least one pixel in the label strip must differ from the background.
	lbl := geo.Labels[1]
	inked := false
	for y := int(lbl.Y); y < int(lbl.Y+lbl.H) && !inked; y++ {
		for x := int(lbl.X); x < int(lbl.X+lbl.W); x++ {
			if pixelAt(img, float64(x), float64(y)) != shade.White {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("label strip is blank")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, shade.Shades{"#ff0000", "#00ff00"}, WithLabels(false)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	geo := Layout(2, WithLabels(false))
	x, y := geo.Cells[0].Center()
	if got := color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("decoded cell 0 = %v, want opaque red", got)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shades.png")
	if err := Save(path, shade.Shades{"#ffffff", "#000000"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestSaveLeavesNoFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shades.png")
	if err := Save(path, shade.Shades{"#ffffff", "nope"}); !errors.Is(err, shade.ErrInvalidColorFormat) {
		t.Fatalf("Save(malformed) error = %v, want ErrInvalidColorFormat", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save(malformed) left %s behind (stat error = %v)", path, err)
	}
}

func TestRenderBorderColor(t *testing.T) {
	border := shade.MustParseHex("#ff00ff")
	opts := []Option{
		WithLabels(false),
		WithRadius(0),
		WithBorder(border, 4),
	}
	img, err := Render(shade.Shades{"#ffffff", "#000000"}, opts...)
	if err != nil {
		t.Fatal(err)
	}

	geo := Layout(2, opts...)
	cell := geo.Cells[1]
	_, cy := cell.Center()
	// A 4px stroke centered on the left edge fully covers the pixel just outside it.
	got := pixelAt(img, cell.X-1, cy)
	if channelDiff(got.R, border.R) > 2 || channelDiff(got.G, border.G) > 2 || channelDiff(got.B, border.B) > 2 {
		t.Errorf("outline pixel = %s, want %s", got.Hex(), border.Hex())
	}
	// The cell interior keeps its fill.
	if cx, _ := cell.Center(); pixelAt(img, cx, cy) != shade.Black {
		t.Errorf("cell center = %s, want #000000", pixelAt(img, cx, cy).Hex())
	}

	plain, err := Render(shade.Shades{"#ffffff", "#000000"}, WithLabels(false), WithRadius(0), WithBorder(border, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(plain, cell.X-1, cy); got != shade.White {
		t.Errorf("zero-width border drew %s outside the cell", got.Hex())
	}
}

func TestRenderLabelColor(t *testing.T) {
	red := shade.MustParseHex("#ff0000")
	opts := []Option{WithLabelColor(red), WithFontSize(24), WithCellSize(120, 40)}
	img, err := Render(shade.Shades{"#ffffff", "#000000"}, opts...)
	if err != nil {
		t.Fatal(err)
	}

	// Glyph stems at 24pt fully cover some pixels; anti-aliased edges blend
	// toward the white background, so only red dominates.
	lbl := Layout(2, opts...).Labels[0]
	found := false
	for y := int(lbl.Y); y < int(lbl.Y+lbl.H) && !found; y++ {
		for x := int(lbl.X); x < int(lbl.X+lbl.W); x++ {
			c := pixelAt(img, float64(x), float64(y))
			if c.R > 200 && c.G < 64 && c.B < 64 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label pixel in the configured label color")
	}
}

func TestSaveBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shades.png")
	if err := Save(path, shade.Shades{"#ffffff", "#000000"}); err == nil {
		t.Error("Save() into missing directory succeeded")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil); !errors.Is(err, ErrNoShades) {
		t.Errorf("Render(nil) error = %v, want ErrNoShades", err)
	}
	if _, err := Render(shade.Shades{"#ffffff", "#12"}); !errors.Is(err, shade.ErrInvalidColorFormat) {
		t.Errorf("Render(malformed) error = %v, want ErrInvalidColorFormat", err)
	}
}

func TestRenderLogs(t *testing.T) {
	orig := shade.Logger()
	t.Cleanup(func() { shade.SetLogger(orig) })

	var buf bytes.Buffer
	shade.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := Render(shade.Shades{"#ffffff", "#808080", "#000000"}, WithColumns(2), WithLabels(false)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"swatch render", "columns=2", "rows=2", "width=136", "height=216"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q: %s", want, buf.String())
		}
	}
}
