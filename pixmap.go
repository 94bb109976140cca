package sdffont

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a single-channel 8-bit pixel buffer holding a distance field
// atlas.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // one byte per pixel, row-major
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to 0.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets a single pixel. Out of range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = v
}

// GetPixel returns a single pixel, or 0 outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Clear fills the entire pixmap with v.
func (p *Pixmap) Clear(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}

// ToImage converts the pixmap to an image.Gray, so the atlas previews as
// a grayscale picture.
func (p *Pixmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return color.Alpha{A: p.GetPixel(x, y)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.AlphaModel
}
