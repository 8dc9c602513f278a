package rectclip

// Line represents a line segment, such as one edge of a [Ring].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, where t = 0 is P0 and t = 1 is P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Contains reports whether pt lies exactly on the line, endpoints included.
func (l Line) Contains(pt Point) bool {
	if l.P1.Sub(l.P0).Cross(pt.Sub(l.P0)) != 0 {
		return false
	}
	return l.BoundingBox().Contains(pt)
}

// SignedArea returns the line's contribution to the signed area of a closed
// ring it is part of.
func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// Winding computes the winding number contribution of the line with respect
// to pt, by casting a ray to the left of pt. Summed over the edges of a ring,
// the sign matches the sign of the ring's [Ring.SignedArea].
func (l Line) Winding(pt Point) int {
	p0, p1 := l.P0, l.P1
	var sign int
	if p1.Y > p0.Y {
		if pt.Y < p0.Y || pt.Y >= p1.Y {
			return 0
		}
		sign = -1
	} else if p1.Y < p0.Y {
		if pt.Y < p1.Y || pt.Y >= p0.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(p0.X, p1.X) {
		return 0
	}
	if pt.X >= max(p0.X, p1.X) {
		return sign
	}
	// line equation ax + by = c
	a := p1.Y - p0.Y
	b := p0.X - p1.X
	c := a*p0.X + b*p0.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}
