package sdffont

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/sdffont/pack"
	"github.com/gogpu/sdffont/sdf"
	"github.com/gogpu/sdffont/truetype"
)

// Import reads a TrueType font from r and builds its distance field atlas.
//
// Either the whole import succeeds or an error is returned; there is no
// partial result. Parser errors can be inspected with errors.As for
// *truetype.FormatError and *truetype.UnsupportedError, and outline errors
// for *sdf.GeometryError.
func Import(r io.Reader, cfg Config) (*FontAsset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sdffont: read font: %w", err)
	}
	return importFont(data, cfg)
}

// ImportFile imports the TrueType font at path.
func ImportFile(path string, cfg Config) (*FontAsset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("sdffont: read font: %w", err)
	}
	return importFont(data, cfg)
}

// importedGlyph is a glyph on its way into the atlas.
type importedGlyph struct {
	ttf   *truetype.Glyph
	shape *sdf.Shape // nil for glyphs without an outline

	size    image.Point
	bearing image.Point
	cell    int // index into the packed cells
}

func importFont(data []byte, cfg Config) (*FontAsset, error) {
	chars := cfg.charset()
	font, err := truetype.Parse(data, float64(cfg.Resolution), chars)
	if err != nil {
		return nil, fmt.Errorf("sdffont: parse font: %w", err)
	}

	border := cfg.Padding + cfg.Range
	var (
		glyphs []importedGlyph
		cells  []pack.Size
	)
	for _, r := range chars {
		g := font.Glyph(r)
		if g == nil {
			Logger().Debug("sdffont: character not in font", "char", string(r))
			continue
		}

		ig := importedGlyph{ttf: g, cell: -1}
		if !g.Empty() {
			shape, err := sdf.FromGlyph(g)
			if err != nil {
				return nil, fmt.Errorf("sdffont: glyph %q: %w", r, err)
			}
			shape.FlipY = true
			Logger().Debug("sdffont: glyph outline", "char", string(r),
				"contours", len(shape.Contours), "edges", shape.EdgeCount(), "bounds", shape.Bounds())
			ig.shape = shape
			ig.size = roundVec(g.Size)
			ig.bearing = roundVec(g.Bearing)
			ig.cell = len(cells)
			cells = append(cells, pack.Size{W: ig.size.X + 2*border, H: ig.size.Y + 2*border})
		}
		glyphs = append(glyphs, ig)
	}

	packed, err := pack.PackAll(cells, cfg.Resolution+2*border)
	if err != nil {
		return nil, fmt.Errorf("sdffont: pack atlas: %w", err)
	}
	Logger().Debug("sdffont: packed atlas",
		"width", packed.Width, "height", packed.Height,
		"cells", len(cells), "passes", packed.Passes)

	atlas := NewPixmap(packed.Width, packed.Height)
	asset := &FontAsset{
		Resolution: cfg.Resolution,
		LineHeight: float32(font.LineHeight),
		Ascent:     float32(font.Ascent),
		Atlas:      atlas,
		Glyphs:     make([]GlyphMetrics, 0, len(glyphs)),
	}

	for _, ig := range glyphs {
		m, err := renderGlyph(atlas, ig, packed.Rects, font.LineHeight, cfg)
		if err != nil {
			return nil, err
		}
		asset.Glyphs = append(asset.Glyphs, m)
	}

	if len(font.Kerning) > 0 {
		asset.Kerning = make(Kerning, len(font.Kerning))
		for key, v := range font.Kerning {
			asset.Kerning[key] = float32(v)
		}
	}

	Logger().Info("sdffont: imported font",
		"glyphs", len(asset.Glyphs),
		"atlas", fmt.Sprintf("%dx%d", atlas.Width(), atlas.Height()),
		"kerning", len(asset.Kerning))
	return asset, nil
}

// renderGlyph rasterizes one glyph into its packed cell and returns its
// metrics. Glyphs without an outline only carry their advance.
func renderGlyph(atlas *Pixmap, ig importedGlyph, rects []pack.Rect, lineHeight float64, cfg Config) (GlyphMetrics, error) {
	g := ig.ttf
	m := GlyphMetrics{
		Char:    g.Char,
		Advance: float32(g.Advance),
	}
	if ig.shape == nil {
		m.Size = [2]float32{float32(g.Advance), float32(lineHeight)}
		return m, nil
	}

	// The region is the cell inset by padding: the glyph box plus Range on
	// every side. Glyph units are already pixels, so the projection only
	// moves the box corner (xMin, yMin) to (Range, Range).
	cell := rects[ig.cell]
	region := image.Rect(
		cell.X+cfg.Padding, cell.Y+cfg.Padding,
		cell.Right()-cfg.Padding, cell.Bottom()-cfg.Padding,
	)
	rng := float64(cfg.Range)
	proj := sdf.Projection{
		Scale: 1,
		Translate: sdf.Point{
			X: -g.Bearing.X + rng,
			Y: g.Size.Y - g.Bearing.Y + rng,
		},
	}
	if err := sdf.Rasterize(ig.shape, atlas, region, proj, rng); err != nil {
		return GlyphMetrics{}, fmt.Errorf("sdffont: glyph %q: %w", g.Char, err)
	}

	w, h := float32(atlas.Width()), float32(atlas.Height())
	m.Bearing = [2]float32{float32(ig.bearing.X), float32(ig.bearing.Y)}
	m.Size = [2]float32{float32(ig.size.X), float32(ig.size.Y)}
	m.UVMin = [2]float32{float32(region.Min.X) / w, float32(region.Min.Y) / h}
	m.UVMax = [2]float32{float32(region.Max.X) / w, float32(region.Max.Y) / h}
	return m, nil
}

func roundVec(v truetype.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}
