package pack

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxCanvas is the largest canvas side PackAll will try.
const MaxCanvas = 16384

var (
	// ErrCanvasTooLarge is returned when the set does not fit a
	// MaxCanvas x MaxCanvas canvas.
	ErrCanvasTooLarge = errors.New("pack: canvas would exceed maximum size")

	// ErrInvalidSize is returned for a rectangle without area.
	ErrInvalidSize = errors.New("pack: invalid rectangle size")
)

// Size is the size of a rectangle to pack.
type Size struct {
	W, H int
}

// Result is a complete packing.
type Result struct {
	// Width and Height are the canvas size, both powers of two.
	Width, Height int

	// Rects holds one placement per input size, in input order.
	Rects []Rect

	// Passes is the number of packing passes run, one per canvas size.
	Passes int
}

// PackAll places every size on the smallest canvas reached by doubling.
//
// Packing starts on a square canvas of NextPow2(start); a start above
// MaxCanvas fails with ErrCanvasTooLarge. When any rectangle
// fails to fit, the pass is discarded and packing restarts from empty with
// the shorter side doubled (width first when both are equal).
func PackAll(sizes []Size, start int) (Result, error) {
	for i, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			return Result{}, fmt.Errorf("%w: %dx%d at index %d", ErrInvalidSize, s.W, s.H, i)
		}
	}

	if start > MaxCanvas {
		return Result{}, fmt.Errorf("%w: start %d", ErrCanvasTooLarge, start)
	}

	w := NextPow2(start)
	h := w
	m := New(w, h)
	rects := make([]Rect, len(sizes))
	for passes := 1; ; passes++ {
		if w > MaxCanvas || h > MaxCanvas {
			return Result{}, ErrCanvasTooLarge
		}
		m.Resize(w, h)
		if packPass(m, sizes, rects) {
			return Result{Width: w, Height: h, Rects: rects, Passes: passes}, nil
		}
		if w <= h {
			w *= 2
		} else {
			h *= 2
		}
	}
}

// packPass inserts every size into m, stopping at the first failure.
func packPass(m *MaxRects, sizes []Size, rects []Rect) bool {
	for i, s := range sizes {
		r, ok := m.Insert(s.W, s.H)
		if !ok {
			return false
		}
		rects[i] = r
	}
	return true
}

// maxPow2 is the largest power of two an int can hold.
const maxPow2 = 1 << (bits.UintSize - 2)

// NextPow2 returns the smallest power of two >= n, and 1 for n <= 1.
// It saturates at the largest power of two an int can hold.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	if n > maxPow2 {
		return maxPow2
	}
	return 1 << bits.Len(uint(n-1))
}
