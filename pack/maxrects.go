package pack

import "slices"

// Rect is a placed or free rectangle in canvas pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether r and s share any area.
func (r Rect) Overlaps(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() && r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Contains reports whether s lies entirely inside r.
func (r Rect) Contains(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y && s.Right() <= r.Right() && s.Bottom() <= r.Bottom()
}

// MaxRects packs rectangles into a fixed canvas.
type MaxRects struct {
	width  int
	height int
	free   []Rect
	used   []Rect

	usedArea int
}

// New creates a packer for a width x height canvas.
func New(width, height int) *MaxRects {
	m := &MaxRects{}
	m.Resize(width, height)
	return m
}

// Resize empties the packer and changes the canvas size.
func (m *MaxRects) Resize(width, height int) {
	m.width, m.height = width, height
	m.Reset()
}

// Reset removes every placed rectangle, keeping the canvas size.
func (m *MaxRects) Reset() {
	m.free = append(m.free[:0], Rect{W: m.width, H: m.height})
	m.used = m.used[:0]
	m.usedArea = 0
}

// Size returns the canvas size.
func (m *MaxRects) Size() (width, height int) {
	return m.width, m.height
}

// Placed returns the rectangles placed so far, in insertion order.
func (m *MaxRects) Placed() []Rect {
	return slices.Clone(m.used)
}

// Occupancy returns the fraction of the canvas covered (0.0 to 1.0).
func (m *MaxRects) Occupancy() float64 {
	total := m.width * m.height
	if total == 0 {
		return 0
	}
	return float64(m.usedArea) / float64(total)
}

// Insert places a w x h rectangle. It returns false when no free
// rectangle can hold it; the packer is unchanged in that case.
func (m *MaxRects) Insert(w, h int) (Rect, bool) {
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}

	node, ok := m.bestLongSideFit(w, h)
	if !ok {
		return Rect{}, false
	}

	for i := 0; i < len(m.free); {
		if m.splitFree(m.free[i], node) {
			m.free = append(m.free[:i], m.free[i+1:]...)
			continue
		}
		i++
	}
	m.pruneFree()

	m.used = append(m.used, node)
	m.usedArea += w * h
	return node, true
}

// bestLongSideFit picks the free rectangle minimizing the larger leftover
// side, then the smaller one.
func (m *MaxRects) bestLongSideFit(w, h int) (Rect, bool) {
	var best Rect
	bestLong, bestShort := -1, -1
	for _, f := range m.free {
		if f.W < w || f.H < h {
			continue
		}
		dw, dh := f.W-w, f.H-h
		long, short := max(dw, dh), min(dw, dh)
		if bestLong < 0 || long < bestLong || (long == bestLong && short < bestShort) {
			best = Rect{X: f.X, Y: f.Y, W: w, H: h}
			bestLong, bestShort = long, short
		}
	}
	return best, bestLong >= 0
}

// splitFree appends the parts of free not covered by used to the free
// list. It reports whether free and used overlap, in which case the caller
// removes free.
func (m *MaxRects) splitFree(free, used Rect) bool {
	if !free.Overlaps(used) {
		return false
	}

	if used.X < free.Right() && used.Right() > free.X {
		// Above the placed rectangle
		if used.Y > free.Y && used.Y < free.Bottom() {
			m.free = append(m.free, Rect{X: free.X, Y: free.Y, W: free.W, H: used.Y - free.Y})
		}
		// Below it
		if used.Bottom() < free.Bottom() {
			m.free = append(m.free, Rect{X: free.X, Y: used.Bottom(), W: free.W, H: free.Bottom() - used.Bottom()})
		}
	}

	if used.Y < free.Bottom() && used.Bottom() > free.Y {
		// Left of it
		if used.X > free.X && used.X < free.Right() {
			m.free = append(m.free, Rect{X: free.X, Y: free.Y, W: used.X - free.X, H: free.H})
		}
		// Right of it
		if used.Right() < free.Right() {
			m.free = append(m.free, Rect{X: used.Right(), Y: free.Y, W: free.Right() - used.Right(), H: free.H})
		}
	}
	return true
}

// pruneFree drops empty free rectangles and those contained in another.
func (m *MaxRects) pruneFree() {
	for i := 0; i < len(m.free); i++ {
		if m.free[i].Empty() {
			m.free = append(m.free[:i], m.free[i+1:]...)
			i--
			continue
		}
		for j := i + 1; j < len(m.free); j++ {
			if m.free[j].Contains(m.free[i]) {
				m.free = append(m.free[:i], m.free[i+1:]...)
				i--
				break
			}
			if m.free[i].Contains(m.free[j]) {
				m.free = append(m.free[:j], m.free[j+1:]...)
				j--
			}
		}
	}
}
