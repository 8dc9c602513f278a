package rectclip

// Edge identifies one of the four half-planes bounding a clip rectangle.
type Edge uint8

// The edges in the order the half-plane clipper applies them.
const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

// clipOrder is the fixed sequence of half-plane passes.
var clipOrder = [4]Edge{EdgeLeft, EdgeRight, EdgeBottom, EdgeTop}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "invalid edge"
	}
}

// Outcode is the set of half-planes a point lies outside of. Bits are the
// [Edge] values; the zero outcode means the point is inside the rectangle.
//
//	        left  mid  right
//	   top  1001  1000  1010
//	   mid  0001  0000  0010
//	bottom  0101  0100  0110
type Outcode uint8

// Outcode classifies pt against the four half-planes of r. Points exactly on
// a boundary line are inside that half-plane.
func (r Rect) Outcode(pt Point) Outcode {
	var c Outcode
	if pt.X < r.X0 {
		c |= Outcode(EdgeLeft)
	} else if pt.X > r.X1 {
		c |= Outcode(EdgeRight)
	}
	if pt.Y < r.Y0 {
		c |= Outcode(EdgeBottom)
	} else if pt.Y > r.Y1 {
		c |= Outcode(EdgeTop)
	}
	return c
}

// Inside reports whether pt lies in the closed half-plane of r described by e.
func (e Edge) Inside(r Rect, pt Point) bool {
	switch e {
	case EdgeLeft:
		return pt.X >= r.X0
	case EdgeRight:
		return pt.X <= r.X1
	case EdgeBottom:
		return pt.Y >= r.Y0
	case EdgeTop:
		return pt.Y <= r.Y1
	default:
		panic("invalid edge")
	}
}

// Intersect returns the point where the segment a→b crosses the boundary line
// of e. The crossed coordinate is set to the boundary exactly; the other one
// is interpolated and clamped to the segment's extent. The result is only
// meaningful if a and b lie on different sides of the boundary.
func (e Edge) Intersect(r Rect, a, b Point) Point {
	switch e {
	case EdgeLeft:
		return Point{r.X0, crossAt(r.X0, a.X, b.X, a.Y, b.Y)}
	case EdgeRight:
		return Point{r.X1, crossAt(r.X1, a.X, b.X, a.Y, b.Y)}
	case EdgeBottom:
		return Point{crossAt(r.Y0, a.Y, b.Y, a.X, b.X), r.Y0}
	case EdgeTop:
		return Point{crossAt(r.Y1, a.Y, b.Y, a.X, b.X), r.Y1}
	default:
		panic("invalid edge")
	}
}

// crossAt returns the value of the free coordinate, which goes from v0 to v1,
// at the parameter where the crossed coordinate, which goes from c0 to c1,
// equals boundary.
func crossAt(boundary, c0, c1, v0, v1 float64) float64 {
	t := (boundary - c0) / (c1 - c0)
	v := v0 + t*(v1-v0)
	return min(max(v, min(v0, v1)), max(v0, v1))
}
