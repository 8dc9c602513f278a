package rectclip

import (
	"iter"
	"math"
)

// Rect is a closed, axis-aligned rectangle. (X0, Y0) is the minimum corner and
// (X1, Y1) the maximum corner. Points on the boundary are part of the
// rectangle.
//
// Clipping functions require X0 ≤ X1 and Y0 ≤ Y1; see [Rect.Validate].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Min returns the minimum corner.
func (r Rect) Min() Point { return Point{r.X0, r.Y0} }

// Max returns the maximum corner.
func (r Rect) Max() Point { return Point{r.X1, r.Y1} }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely within r. Shared edges count as
// contained.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Disjoint reports whether r and o have no point in common. Rectangles that
// merely touch are not disjoint.
func (r Rect) Disjoint(o Rect) bool {
	return o.X1 < r.X0 || o.X0 > r.X1 || o.Y1 < r.Y0 || o.Y0 > r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// Validate returns an [*InvalidRectangleError] if r cannot be used as a clip
// window, that is if its minimum corner exceeds its maximum corner in either
// axis or if any coordinate is NaN. Zero-width and zero-height rectangles are
// valid.
func (r Rect) Validate() error {
	if r.IsNaN() || r.X0 > r.X1 || r.Y0 > r.Y1 {
		return &InvalidRectangleError{Rect: r}
	}
	return nil
}

// Ring returns the rectangle's outline as a counter-clockwise ring in a y-up
// space.
func (r Rect) Ring() Ring {
	return Ring{
		Pt(r.X0, r.Y0),
		Pt(r.X1, r.Y0),
		Pt(r.X1, r.Y1),
		Pt(r.X0, r.Y1),
	}
}

// Commands returns the rectangle's outline as a command stream, terminated by
// [End].
func (r Rect) Commands() iter.Seq[Command] {
	return NewPolygon(r.Ring()).Commands()
}
