// Package sdffont imports TrueType fonts as signed distance field atlases.
//
// # Overview
//
// An import parses a font for a fixed set of characters, converts each
// glyph outline to quadratic and linear edges, packs one cell per glyph
// into a power-of-two atlas and renders a single-channel distance field
// into every cell. The result is a [FontAsset]: the atlas, per-glyph
// metrics with UV coordinates, and a kerning table.
//
// Distance field text stays sharp when scaled: a shader samples the atlas
// and thresholds at 0.5, which is where the glyph outline lies.
//
// # Quick Start
//
//	asset, err := sdffont.ImportFile("Go-Regular.ttf", sdffont.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := asset.Atlas.SavePNG("atlas.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration
//
// [Config] selects the characters to import and three sizes in pixels:
// Resolution is the em size glyphs are rendered at, Range is how far the
// distance field extends past the outline, and Padding is extra empty
// border around each cell.
//
// # Limitations
//
// Only character codes 0 to 254 are imported, only format 4 character maps
// are read, and compound glyphs are rejected with an error matching
// [errors.ErrUnsupported].
//
// # Output
//
// [FontAsset.WriteTo] serializes an asset in a compact little-endian
// binary layout; [ReadFontAsset] reads it back.
//
// # Importers
//
// A [Registry] picks the importer by file extension. [Registry.ImportAll]
// imports several files concurrently; each import on its own is a single
// synchronous call.
//
// # Subpackages
//
//   - truetype: table parser producing glyph outlines and metrics
//   - sdf: outline shapes and the distance field rasterizer
//   - pack: MaxRects rectangle packer
package sdffont
