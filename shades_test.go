package shade

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateReference(t *testing.T) {
	tests := []struct {
		base  string
		count int
		want  Shades
	}{
		{"#ff0000", 4, Shades{"#ffffff", "#ff5555", "#aa0000", "#000000"}},
		{"#3366cc", 5, Shades{"#ffffff", "#99b3e6", "#3366cc", "#193366", "#000000"}},
		{"#3366cc", 10, Shades{
			"#ffffff", "#d2ddf4", "#a4bbe8", "#7799dd", "#4a77d2",
			"#2d5bb5", "#224488", "#172d5b", "#0b172d", "#000000",
		}},
		{"#00ff00", 3, Shades{"#ffffff", "#00ff00", "#000000"}},
		{"#808080", 3, Shades{"#ffffff", "#808080", "#000000"}},
		{"#ABCDEF", 2, Shades{"#ffffff", "#000000"}},
		{"#111144", 17, Shades{
			"#ffffff", "#e6e6f9", "#ccccf2", "#b3b3ec", "#9999e6", "#8080df",
			"#6666d9", "#4d4dd2", "#3333cc", "#2d2db3", "#262699", "#202080",
			"#191966", "#13134d", "#0d0d33", "#06061a", "#000000",
		}},
		{"#111177", 6, Shades{"#ffffff", "#a6a6f2", "#4d4de5", "#1a1ab3", "#0d0d59", "#000000"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.base, tt.count), func(t *testing.T) {
			got, err := Generate(tt.base, tt.count)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate(%q, %d) mismatch (-want +got):\n%s", tt.base, tt.count, diff)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate("#3366cc", 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate("#3366cc", 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Generate not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateProperties(t *testing.T) {
	bases := []string{"#ffffff", "#000000", "#ff0000", "#3366cc", "#123456", "#fedcba", "#7f7f7f", "#00ffaa"}
	for _, base := range bases {
		for count := MinCount; count <= 50; count++ {
			shades, err := Generate(base, count)
			if err != nil {
				t.Fatalf("Generate(%q, %d) error = %v", base, count, err)
			}
			if len(shades) != count {
				t.Fatalf("Generate(%q, %d) len = %d", base, count, len(shades))
			}
			if shades[0] != "#ffffff" {
				t.Errorf("Generate(%q, %d)[0] = %s, want #ffffff", base, count, shades[0])
			}
			if last := shades[count-1]; last != "#000000" {
				t.Errorf("Generate(%q, %d)[last] = %s, want #000000", base, count, last)
			}
			ls := shades.Lightness()
			for i := 1; i < len(ls); i++ {
				if ls[i] > ls[i-1] {
					t.Fatalf("Generate(%q, %d): lightness increases at %d: %v > %v", base, count, i, ls[i], ls[i-1])
				}
			}
		}
	}
}

func TestGenerateCountTwo(t *testing.T) {
	for _, base := range []string{"#ff0000", "#3366cc", "abcdef", "#000000"} {
		got, err := Generate(base, 2)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Shades{"#ffffff", "#000000"}, got); diff != "" {
			t.Errorf("Generate(%q, 2) mismatch (-want +got):\n%s", base, diff)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		count int
		want  error
	}{
		{"bad base", "#fff", 10, ErrInvalidColorFormat},
		{"named color", "blue", 10, ErrInvalidColorFormat},
		{"bad base and count", "#zzzzzz", 0, ErrInvalidColorFormat},
		{"count one", "#3366cc", 1, ErrInvalidShadeCount},
		{"count zero", "#3366cc", 0, ErrInvalidShadeCount},
		{"negative count", "#3366cc", -4, ErrInvalidShadeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.base, tt.count)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate(%q, %d) error = %v, want %v", tt.base, tt.count, err, tt.want)
			}
			if got != nil {
				t.Errorf("Generate(%q, %d) returned partial result %v", tt.base, tt.count, got)
			}
		})
	}
}

func TestCountErrorValue(t *testing.T) {
	_, err := GenerateRGB(White, 1)
	var ce *CountError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T, want *CountError", err)
	}
	if ce.Count != 1 {
		t.Errorf("CountError.Count = %d, want 1", ce.Count)
	}
}

func TestShadesRGB(t *testing.T) {
	got, err := Shades{"#ffffff", "#3366cc"}.RGB()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]RGB{White, {0x33, 0x66, 0xcc}}, got); diff != "" {
		t.Errorf("RGB() mismatch (-want +got):\n%s", diff)
	}
	if _, err := (Shades{"#ffffff", "oops"}).RGB(); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("RGB() error = %v, want ErrInvalidColorFormat", err)
	}
	if got := (Shades{"oops"}).Lightness(); got[0] != -1 {
		t.Errorf("Lightness() of malformed entry = %v, want -1", got[0])
	}
}

func TestGenerateConcurrent(t *testing.T) {
	want, err := Generate("#3366cc", 25)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Generate("#3366cc", 25)
			if err != nil {
				t.Error(err)
				return
			}
			if !cmp.Equal(want, got) {
				t.Error("concurrent Generate returned a different set")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Generate("#3366cc", 50)
	}
}

func BenchmarkParseHex(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = ParseHex("#3366cc")
	}
}
