// Package truetype decodes the subset of a TrueType font needed to build a
// signed distance field atlas.
//
// Parse reads the table directory and then the head, maxp, cmap, hhea, hmtx,
// loca, glyf and kern tables, in that order. Each table depends on values
// decoded by an earlier one: the scale factor comes from head, the glyph count
// from maxp, and glyph ids from cmap. Only simple glyphs, format 4 character
// maps and format 0 kerning subtables are supported; anything else is reported
// as an [UnsupportedError].
//
// Character codes are restricted to 0..254. Every coordinate and metric is
// scaled by size/unitsPerEm, so a Font parsed with size 64 measures glyphs in
// pixels of a 64 pixel em square.
package truetype
