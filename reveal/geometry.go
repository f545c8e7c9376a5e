package reveal

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Area returns the area of r, or 0 for degenerate boxes.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and o. The result has zero area when
// they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// VisibleFraction returns the fraction of element's area inside viewport.
// Zero-area elements are never visible.
func VisibleFraction(element, viewport Rect) float64 {
	area := element.Area()
	if area == 0 {
		return 0
	}
	return element.Intersect(viewport).Area() / area
}

// Intersects reports whether element counts as in view. A threshold of 0
// needs any positive overlap; otherwise at least threshold of the element
// must be visible.
func Intersects(element, viewport Rect, threshold float64) bool {
	fraction := VisibleFraction(element, viewport)
	if fraction == 0 {
		return false
	}
	return fraction >= threshold
}
