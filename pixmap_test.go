package sdffont

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 8)
	pm.SetPixel(5, 3, 200)

	if got := pm.GetPixel(5, 3); got != 200 {
		t.Errorf("GetPixel(5, 3) = %d, want 200", got)
	}
	if got := pm.Data()[3*10+5]; got != 200 {
		t.Errorf("raw data = %d, want 200", got)
	}
	if got := pm.At(5, 3); got != (color.Alpha{A: 200}) {
		t.Errorf("At(5, 3) = %v, want alpha 200", got)
	}
	if got := pm.Bounds(); got != image.Rect(0, 0, 10, 8) {
		t.Errorf("Bounds() = %v, want (0,0)-(10,8)", got)
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(9)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, 255)
		if got := pm.GetPixel(c.x, c.y); got != 0 {
			t.Errorf("GetPixel(%d, %d) = %d, want 0", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != 9 {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want 9", i, v)
		}
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			pm.SetPixel(x, y, uint8(x*60+y))
		}
	}

	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got, want := gray.GrayAt(x, y).Y, pm.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPixmapSavePNGError(t *testing.T) {
	pm := NewPixmap(1, 1)
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "atlas.png")); err == nil {
		t.Error("SavePNG() into missing directory succeeded")
	}
}
