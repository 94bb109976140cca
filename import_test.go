package sdffont

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdffont/internal/ttftest"
	"github.com/gogpu/sdffont/pack"
	"github.com/gogpu/sdffont/truetype"
)

// triangleFont has 32 units per em, so importing at Resolution 32 keeps
// font units as pixels.
func triangleFont() *ttftest.Font {
	return &ttftest.Font{
		UnitsPerEm: 32,
		Ascent:     28,
		Descent:    -4,
		Glyphs: []ttftest.Glyph{
			{Char: 'A', Advance: 26, Contours: [][]ttftest.Point{
				{{X: 0, Y: 0, OnCurve: true}, {X: 12, Y: 24, OnCurve: true}, {X: 24, Y: 0, OnCurve: true}},
			}},
			{Char: 'V', Advance: 26, Contours: [][]ttftest.Point{
				{{X: 0, Y: 24, OnCurve: true}, {X: 24, Y: 24, OnCurve: true}, {X: 12, Y: 0, OnCurve: true}},
			}},
			{Char: ' ', Advance: 8},
		},
		Kern: []ttftest.KernPair{{Left: 'A', Right: 'V', Value: -3}},
	}
}

func triangleConfig() Config {
	return Config{Resolution: 32, Range: 4, Padding: 2, Chars: "AV"}
}

func TestImportTriangle(t *testing.T) {
	asset, err := Import(bytes.NewReader(triangleFont().Build()), triangleConfig())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if asset.Resolution != 32 || asset.LineHeight != 32 || asset.Ascent != 28 {
		t.Errorf("Resolution, LineHeight, Ascent = %d, %v, %v, want 32, 32, 28",
			asset.Resolution, asset.LineHeight, asset.Ascent)
	}
	// Two 36x36 cells do not fit the 64x64 start canvas.
	if w, h := asset.Atlas.Width(), asset.Atlas.Height(); w != 128 || h != 64 {
		t.Errorf("atlas = %dx%d, want 128x64", w, h)
	}

	want := []GlyphMetrics{
		{
			Char: 'A', Advance: 26,
			Bearing: [2]float32{0, 24}, Size: [2]float32{24, 24},
			UVMin: [2]float32{2.0 / 128, 2.0 / 64}, UVMax: [2]float32{34.0 / 128, 34.0 / 64},
		},
		{
			Char: 'V', Advance: 26,
			Bearing: [2]float32{0, 24}, Size: [2]float32{24, 24},
			UVMin: [2]float32{38.0 / 128, 2.0 / 64}, UVMax: [2]float32{70.0 / 128, 34.0 / 64},
		},
		{Char: ' ', Advance: 8, Size: [2]float32{8, 32}},
	}
	if diff := cmp.Diff(want, asset.Glyphs); diff != "" {
		t.Errorf("Glyphs mismatch (-want +got):\n%s", diff)
	}

	// The region of 'A' starts at (2, 2) and maps glyph (0, 0) to region
	// pixel (4, 4) counted from the bottom. Pixel (15, 11) from the bottom
	// samples (11.5, 7.5), next to the centroid (12, 8).
	a, _ := asset.Glyph('A')
	x0 := int(a.UVMin[0] * float32(asset.Atlas.Width()))
	y0 := int(a.UVMin[1] * float32(asset.Atlas.Height()))
	const regionH = 32
	centre := asset.Atlas.GetPixel(x0+15, y0+regionH-1-11)
	if v := float64(centre) / 255; v <= 0.5 {
		t.Errorf("centroid value = %v, want > 0.5", v)
	}
	corner := asset.Atlas.GetPixel(x0, y0)
	if v := float64(corner) / 255; v >= 0.5 {
		t.Errorf("far outside value = %v, want < 0.5", v)
	}
	if v := asset.Atlas.GetPixel(120, 60); v != 0 {
		t.Errorf("unused atlas pixel = %d, want 0", v)
	}
}

func TestImportTriangleOutlineIsHalf(t *testing.T) {
	asset, err := Import(bytes.NewReader(triangleFont().Build()), triangleConfig())
	if err != nil {
		t.Fatal(err)
	}
	a, _ := asset.Glyph('A')
	x0 := int(a.UVMin[0] * float32(asset.Atlas.Width()))
	y0 := int(a.UVMin[1] * float32(asset.Atlas.Height()))

	// Walking up the vertical through the apex, values rise from outside to
	// inside across the base edge at region row 4 from the bottom.
	const regionH = 32
	below := asset.Atlas.GetPixel(x0+16, y0+regionH-1-3) // samples y = -0.5
	above := asset.Atlas.GetPixel(x0+16, y0+regionH-1-4) // samples y = 0.5
	if below >= 127 || above <= 127 {
		t.Errorf("values across base edge = %d, %d, want < 127 then > 127", below, above)
	}
}

func TestImportKerning(t *testing.T) {
	asset, err := Import(bytes.NewReader(triangleFont().Build()), triangleConfig())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		left, right rune
		want        float32
	}{
		{'A', 'V', -3},
		{'V', 'A', 0},
		{'A', ' ', 0},
	}
	for _, tt := range tests {
		if got := asset.Kerning.Lookup(tt.left, tt.right); got != tt.want {
			t.Errorf("Lookup(%q, %q) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
	if len(asset.Kerning) != 1 {
		t.Errorf("len(Kerning) = %d, want 1", len(asset.Kerning))
	}

	var none Kerning
	if got := none.Lookup('A', 'V'); got != 0 {
		t.Errorf("nil Kerning Lookup = %v, want 0", got)
	}
}

func TestImportGoRegular(t *testing.T) {
	cfg := DefaultConfig()
	asset, err := Import(bytes.NewReader(goregular.TTF), cfg)
	if err != nil {
		t.Fatalf("Import(goregular) error = %v", err)
	}

	if got, want := len(asset.Glyphs), len(DefaultChars); got != want {
		t.Errorf("len(Glyphs) = %d, want %d", got, want)
	}
	if asset.Kerning != nil {
		t.Errorf("Kerning = %v, want nil for a font without kern table", asset.Kerning)
	}
	// 2048 units per em rendered at 64 pixels.
	if asset.LineHeight != 73.96875 || asset.Ascent != 60.46875 {
		t.Errorf("LineHeight, Ascent = %v, %v, want 73.96875, 60.46875", asset.LineHeight, asset.Ascent)
	}
	w, h := asset.Atlas.Width(), asset.Atlas.Height()
	if w&(w-1) != 0 || h&(h-1) != 0 {
		t.Errorf("atlas %dx%d is not a power of two", w, h)
	}

	if g, ok := asset.Glyph('A'); !ok || g.Advance != 42.6875 {
		t.Errorf("Glyph('A') = %+v, %v, want advance 42.6875", g, ok)
	}
	if g, ok := asset.Glyph(' '); !ok || g.Size[1] != asset.LineHeight || g.UVMax != [2]float32{} {
		t.Errorf("Glyph(' ') = %+v, want empty glyph with line height", g)
	}

	for _, g := range asset.Glyphs {
		if g.Char == ' ' {
			continue
		}
		if !(g.UVMin[0] >= 0 && g.UVMin[1] >= 0 && g.UVMax[0] <= 1 && g.UVMax[1] <= 1 &&
			g.UVMin[0] < g.UVMax[0] && g.UVMin[1] < g.UVMax[1]) {
			t.Errorf("glyph %q UV = %v..%v, want ordered inside [0, 1]", g.Char, g.UVMin, g.UVMax)
		}
	}

	centre := func(r rune) uint8 {
		g, _ := asset.Glyph(r)
		x := int((g.UVMin[0] + g.UVMax[0]) / 2 * float32(w))
		y := int((g.UVMin[1] + g.UVMax[1]) / 2 * float32(h))
		return asset.Atlas.GetPixel(x, y)
	}
	if v := centre('O'); v >= 64 {
		t.Errorf("centre of 'O' = %d, want deep outside (hole)", v)
	}
	if v := centre('I'); v <= 127 {
		t.Errorf("centre of 'I' = %d, want inside", v)
	}
}

func TestImportErrors(t *testing.T) {
	compound := triangleFont()
	compound.Glyphs[0] = ttftest.Glyph{Char: 'A', Advance: 26, Compound: true}

	corrupt := triangleFont()
	corrupt.Corrupt = "glyf"

	tests := []struct {
		name  string
		data  []byte
		cfg   Config
		check func(error) bool
	}{
		{
			"invalid config",
			triangleFont().Build(),
			Config{Resolution: 0, Range: 4},
			func(err error) bool { var ce *ConfigError; return errors.As(err, &ce) },
		},
		{
			"range above canvas limit",
			triangleFont().Build(),
			Config{Resolution: 32, Range: 1 << 61, Padding: 2, Chars: "AV"},
			func(err error) bool { var ce *ConfigError; return errors.As(err, &ce) && ce.Field == "Range" },
		},
		{
			"cell larger than canvas",
			triangleFont().Build(),
			Config{Resolution: 32, Range: pack.MaxCanvas, Padding: 2, Chars: "AV"},
			func(err error) bool { return errors.Is(err, pack.ErrCanvasTooLarge) },
		},
		{
			"empty data",
			nil,
			triangleConfig(),
			func(err error) bool { return errors.Is(err, truetype.ErrEmptyData) },
		},
		{
			"compound glyph",
			compound.Build(),
			triangleConfig(),
			func(err error) bool { return errors.Is(err, errors.ErrUnsupported) },
		},
		{
			"checksum mismatch",
			corrupt.Build(),
			triangleConfig(),
			func(err error) bool { var fe *truetype.FormatError; return errors.As(err, &fe) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := Import(bytes.NewReader(tt.data), tt.cfg)
			if err == nil {
				t.Fatal("Import() succeeded, want error")
			}
			if asset != nil {
				t.Error("Import() returned a partial asset")
			}
			if !tt.check(err) {
				t.Errorf("Import() error = %v (%T), wrong kind", err, err)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	if _, err := ImportFile("does-not-exist.ttf", triangleConfig()); err == nil {
		t.Error("ImportFile(missing) succeeded")
	}
	if _, err := ImportFile("does-not-exist.ttf", Config{}); !errors.As(err, new(*ConfigError)) {
		t.Errorf("ImportFile(bad config) error = %v, want *ConfigError", err)
	}
}
