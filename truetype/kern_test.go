package truetype

import (
	"errors"
	"testing"

	"github.com/gogpu/sdffont/internal/ttftest"
)

func kernFont() *ttftest.Font {
	font := simpleFont()
	font.Glyphs = append(font.Glyphs,
		ttftest.Glyph{Char: 'V', Advance: 700, Contours: square()},
		ttftest.Glyph{Char: 'W', Advance: 900, Contours: square()},
	)
	font.Kern = []ttftest.KernPair{
		{Left: 'A', Right: 'V', Value: -80},
		{Left: 'V', Right: 'A', Value: -96},
		{Left: 'A', Right: 'W', Value: 32},
	}
	return font
}

func TestKerning(t *testing.T) {
	f, err := Parse(kernFont().Build(), 64, "AV ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		left, right rune
		want        float64
	}{
		{'A', 'V', -5},
		{'V', 'A', -6},
		{'A', 'W', 0}, // W is filtered out
		{'A', 'A', 0},
		{' ', 'A', 0},
	}
	for _, tt := range tests {
		if got := f.Kerning[KerningKey(tt.left, tt.right)]; got != tt.want {
			t.Errorf("Kerning[%q, %q] = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
	if len(f.Kerning) != 2 {
		t.Errorf("len(Kerning) = %d, want 2", len(f.Kerning))
	}
}

func TestKerningKey(t *testing.T) {
	if got := KerningKey('A', 'V'); got != 0x4156 {
		t.Errorf("KerningKey('A', 'V') = %#x, want 0x4156", got)
	}
	if got := KerningKey(254, 1); got != 0xFE01 {
		t.Errorf("KerningKey(254, 1) = %#x, want 0xfe01", got)
	}
}

func TestKerningUnsupportedFormat(t *testing.T) {
	font := kernFont()
	font.KernFormat = 2

	_, err := Parse(font.Build(), 64, "AV")
	var ue *UnsupportedError
	if !errors.As(err, &ue) || ue.Table != "kern" {
		t.Fatalf("Parse() error = %v, want kern UnsupportedError", err)
	}
}
