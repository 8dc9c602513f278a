package rectclip

import (
	"iter"
	"math"
	"slices"
)

// Ring is a closed loop of points. The segment from the last point back to the
// first is implicitly part of the ring; an explicit closing point equal to the
// first point is tolerated and removed by [Ring.Normalize].
//
// A ring with fewer than three distinct points, or with zero area, is
// degenerate and never produced by clipping.
type Ring []Point

// Normalize returns a copy of r with consecutive duplicate points removed,
// including a closing point that repeats the first point. Zero-length edges
// thus never reach edge classification.
func (r Ring) Normalize() Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, 0, len(r))
	for _, pt := range r {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Clone returns a copy of r.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	return slices.Clone(r)
}

// Reverse returns a copy of r with the order of its points reversed, keeping
// the first point in place.
func (r Ring) Reverse() Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, len(r))
	out[0] = r[0]
	for i := 1; i < len(r); i++ {
		out[i] = r[len(r)-i]
	}
	return out
}

// Edges returns the ring's edges, including the implicit one from the last
// point back to the first.
func (r Ring) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if len(r) < 2 {
			return
		}
		prev := r[len(r)-1]
		for _, pt := range r {
			if !yield(Line{prev, pt}) {
				return
			}
			prev = pt
		}
	}
}

// SignedArea returns the area enclosed by r. The area is positive if the ring is
// counter-clockwise in a y-up space and negative if it is clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	for l := range r.Edges() {
		sum += l.SignedArea()
	}
	return sum
}

// Perimeter returns the length of r's boundary.
func (r Ring) Perimeter() float64 {
	var sum float64
	for l := range r.Edges() {
		sum += l.Length()
	}
	return sum
}

// BoundingBox returns the smallest rectangle enclosing all points of r. The
// bounding box of an empty ring is the zero rectangle.
func (r Ring) BoundingBox() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	bbox := Rect{r[0].X, r[0].Y, r[0].X, r[0].Y}
	for _, pt := range r[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Winding returns the winding number of pt with respect to r. The sign of the
// winding number matches the sign of [Ring.SignedArea].
func (r Ring) Winding(pt Point) int {
	var n int
	for l := range r.Edges() {
		n += l.Winding(pt)
	}
	return n
}

// Within reports whether r lies inside o, assuming the two rings don't cross.
//
// The first vertex of r that isn't on o's boundary decides; the winding
// number of a point on the boundary depends on the direction of the edge it
// lies on. If every vertex is on the boundary, the midpoints of r's edges are
// tried the same way. Rings that share all of their boundary aren't nested.
func (r Ring) Within(o Ring) bool {
	if len(r) == 0 || len(o) < 3 {
		return false
	}
	for _, pt := range r {
		if !o.onBoundary(pt) {
			return o.Winding(pt) != 0
		}
	}
	for l := range r.Edges() {
		if mid := l.Eval(0.5); !o.onBoundary(mid) {
			return o.Winding(mid) != 0
		}
	}
	return false
}

// onBoundary reports whether pt lies exactly on one of r's edges.
func (r Ring) onBoundary(pt Point) bool {
	for l := range r.Edges() {
		if l.Contains(pt) {
			return true
		}
	}
	return false
}

// degenerate reports whether a normalized ring has too few points or encloses
// no area.
func (r Ring) degenerate() bool {
	return len(r) < 3 || r.SignedArea() == 0
}

// IsNaN reports whether any point of r has a NaN coordinate.
func (r Ring) IsNaN() bool {
	return slices.ContainsFunc(r, Point.IsNaN)
}

// Polygon is a region bounded by exterior rings and hole rings.
//
// Input polygons usually have a single exterior ring; see [NewPolygon].
// Clipping strategies that split rings can produce several exterior rings,
// which is why the exteriors are a slice as well. Holes are assumed to lie
// within the exteriors and not to intersect each other. This is never
// verified.
type Polygon struct {
	Exteriors []Ring
	Holes     []Ring
}

// NewPolygon returns a polygon with one exterior ring and the given holes.
func NewPolygon(exterior Ring, holes ...Ring) Polygon {
	return Polygon{
		Exteriors: []Ring{exterior},
		Holes:     holes,
	}
}

// NumRings returns the total number of rings, exteriors first.
func (p Polygon) NumRings() int {
	return len(p.Exteriors) + len(p.Holes)
}

// Ring returns the i-th ring, counting exteriors before holes.
func (p Polygon) Ring(i int) Ring {
	if i < len(p.Exteriors) {
		return p.Exteriors[i]
	}
	return p.Holes[i-len(p.Exteriors)]
}

// IsEmpty reports whether p has no rings at all.
func (p Polygon) IsEmpty() bool {
	return p.NumRings() == 0
}

// NumPoints returns the number of points in all rings.
func (p Polygon) NumPoints() int {
	var n int
	for i := range p.NumRings() {
		n += len(p.Ring(i))
	}
	return n
}

// Area returns the unsigned area of p: the area of the exteriors minus the
// area of the holes, independent of the rings' orientation.
func (p Polygon) Area() float64 {
	var a float64
	for _, r := range p.Exteriors {
		a += math.Abs(r.SignedArea())
	}
	for _, r := range p.Holes {
		a -= math.Abs(r.SignedArea())
	}
	return a
}

// BoundingBox returns the bounding box of all exterior rings.
func (p Polygon) BoundingBox() Rect {
	var bbox Rect
	first := true
	for _, r := range p.Exteriors {
		if len(r) == 0 {
			continue
		}
		if first {
			bbox = r.BoundingBox()
			first = false
			continue
		}
		for _, pt := range r {
			bbox = bbox.UnionPoint(pt)
		}
	}
	return bbox
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	var out Polygon
	for _, r := range p.Exteriors {
		out.Exteriors = append(out.Exteriors, r.Clone())
	}
	for _, r := range p.Holes {
		out.Holes = append(out.Holes, r.Clone())
	}
	return out
}
