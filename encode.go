package sdffont

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/sdffont/pack"
)

// Serialized asset layout, all little-endian:
//
//	magic "SDFF", version u16
//	resolution i32, line height f32, ascent f32
//	atlas width i32, height i32, pixel format u8, width*height bytes
//	glyph count i32, glyph records
//	kerning count i32, kerning records sorted by key
const (
	assetMagic   = "SDFF"
	assetVersion = 1

	// FormatA8 is the only atlas pixel format: one 8-bit channel.
	FormatA8 = 1
)

type assetHeader struct {
	Magic      [4]byte
	Version    uint16
	Resolution int32
	LineHeight float32
	Ascent     float32
	Width      int32
	Height     int32
	Format     uint8
}

type glyphRecord struct {
	Char    uint16
	Advance float32
	Bearing [2]float32
	Size    [2]float32
	UVMin   [2]float32
	UVMax   [2]float32
}

type kerningRecord struct {
	Key    uint16
	Offset float32
}

// countingWriter counts bytes written and keeps the first error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

func (cw *countingWriter) put(v any) {
	if cw.err == nil {
		if err := binary.Write(cw, binary.LittleEndian, v); err != nil && cw.err == nil {
			cw.err = err
		}
	}
}

// WriteTo serializes the asset to w. It implements io.WriterTo.
func (a *FontAsset) WriteTo(w io.Writer) (int64, error) {
	atlas := a.Atlas
	if atlas == nil {
		atlas = NewPixmap(0, 0)
	}

	hdr := assetHeader{
		Version:    assetVersion,
		Resolution: int32(a.Resolution),
		LineHeight: a.LineHeight,
		Ascent:     a.Ascent,
		Width:      int32(atlas.Width()),
		Height:     int32(atlas.Height()),
		Format:     FormatA8,
	}
	copy(hdr.Magic[:], assetMagic)

	glyphs := make([]glyphRecord, len(a.Glyphs))
	for i, g := range a.Glyphs {
		glyphs[i] = glyphRecord{
			Char:    uint16(g.Char),
			Advance: g.Advance,
			Bearing: g.Bearing,
			Size:    g.Size,
			UVMin:   g.UVMin,
			UVMax:   g.UVMax,
		}
	}

	keys := make([]uint16, 0, len(a.Kerning))
	for k := range a.Kerning {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kerning := make([]kerningRecord, len(keys))
	for i, k := range keys {
		kerning[i] = kerningRecord{Key: k, Offset: a.Kerning[k]}
	}

	cw := &countingWriter{w: w}
	cw.put(&hdr)
	cw.put(atlas.Data())
	cw.put(int32(len(glyphs)))
	cw.put(glyphs)
	cw.put(int32(len(kerning)))
	cw.put(kerning)
	if cw.err != nil {
		return cw.n, fmt.Errorf("sdffont: write asset: %w", cw.err)
	}
	return cw.n, nil
}

// ReadFontAsset decodes an asset written by FontAsset.WriteTo.
func ReadFontAsset(r io.Reader) (*FontAsset, error) {
	var hdr assetHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, readError(err)
	}
	if string(hdr.Magic[:]) != assetMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadAsset, hdr.Magic[:])
	}
	if hdr.Version != assetVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadAsset, hdr.Version)
	}
	if hdr.Format != FormatA8 {
		return nil, fmt.Errorf("%w: unsupported pixel format %d", ErrBadAsset, hdr.Format)
	}
	if hdr.Width < 0 || hdr.Height < 0 || hdr.Width > pack.MaxCanvas || hdr.Height > pack.MaxCanvas {
		return nil, fmt.Errorf("%w: atlas size %dx%d", ErrBadAsset, hdr.Width, hdr.Height)
	}

	atlas := NewPixmap(int(hdr.Width), int(hdr.Height))
	if _, err := io.ReadFull(r, atlas.data); err != nil {
		return nil, readError(err)
	}

	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, readError(err)
	}
	if count < 0 || count > maxChar+1 {
		return nil, fmt.Errorf("%w: glyph count %d", ErrBadAsset, count)
	}
	records := make([]glyphRecord, count)
	if err := binary.Read(r, binary.LittleEndian, records); err != nil {
		return nil, readError(err)
	}

	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, readError(err)
	}
	if count < 0 || count > 1<<16 {
		return nil, fmt.Errorf("%w: kerning count %d", ErrBadAsset, count)
	}
	kerning := make([]kerningRecord, count)
	if err := binary.Read(r, binary.LittleEndian, kerning); err != nil {
		return nil, readError(err)
	}

	a := &FontAsset{
		Resolution: int(hdr.Resolution),
		LineHeight: hdr.LineHeight,
		Ascent:     hdr.Ascent,
		Atlas:      atlas,
	}
	if len(records) > 0 {
		a.Glyphs = make([]GlyphMetrics, len(records))
		for i, g := range records {
			a.Glyphs[i] = GlyphMetrics{
				Char:    rune(g.Char),
				Advance: g.Advance,
				Bearing: g.Bearing,
				Size:    g.Size,
				UVMin:   g.UVMin,
				UVMax:   g.UVMax,
			}
		}
	}
	if len(kerning) > 0 {
		a.Kerning = make(Kerning, len(kerning))
		for _, k := range kerning {
			a.Kerning[k.Key] = k.Offset
		}
	}
	return a, nil
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("sdffont: read asset: %w", err)
}
