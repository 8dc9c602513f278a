package rectclip

import (
	"iter"
)

// ringLen returns the number of points of r that are emitted as vertices. An
// explicit closing point is left to the closing LineTo.
func ringLen(r Ring) int {
	n := len(r)
	if n > 1 && r[n-1] == r[0] {
		n--
	}
	return n
}

// ringCommand returns the i-th command of r's emission: MoveTo to the first
// point, LineTo to each following point, LineTo back to the first point and
// ClosePath. A ring of n points emits n+2 commands.
func ringCommand(r Ring, n, i int) Command {
	switch {
	case i == 0:
		return MoveTo(r[0])
	case i < n:
		return LineTo(r[i])
	case i == n:
		return LineTo(r[0])
	default:
		return ClosePath()
	}
}

// Cursor is a [CommandSource] over the rings of a polygon, exteriors first.
//
// The cursor's position is explicit: the index of the current ring and the
// index of the next command within that ring's emission. Any number of cursors
// may share a polygon, but a single cursor must not be used concurrently.
// The polygon must not be modified while cursors refer to it.
type Cursor struct {
	poly   Polygon
	ring   int
	vertex int
}

var _ CommandSource = (*Cursor)(nil)

// NewCursor returns a cursor positioned at the first command of p.
func NewCursor(p Polygon) *Cursor {
	return &Cursor{poly: p}
}

// Rewind positions the cursor at the first command of the first ring.
func (c *Cursor) Rewind() {
	c.ring = 0
	c.vertex = 0
}

// Next returns the next command. After the last ClosePath it returns End
// until [Cursor.Rewind] is called. Empty rings emit nothing.
func (c *Cursor) Next() Command {
	for c.ring < c.poly.NumRings() {
		r := c.poly.Ring(c.ring)
		n := ringLen(r)
		if c.vertex > n+1 || n == 0 {
			c.ring++
			c.vertex = 0
			continue
		}
		cmd := ringCommand(r, n, c.vertex)
		c.vertex++
		return cmd
	}
	return End()
}

// LazyCursor is a [CommandSource] that clips a polygon one ring at a time, as
// the cursor reaches each ring. It produces the same commands as a [Cursor]
// over the result of [ClipPolygonWith].
//
// Rings are clipped at most once; rewinding replays the rings clipped so far.
// A LazyCursor must not be used concurrently.
type LazyCursor struct {
	src  Polygon
	rect Rect
	clip RingClipper

	// clipped[i] holds the results for input ring i once done[i] is set.
	clipped [][]Ring
	done    []bool

	in     int
	out    int
	vertex int
}

var _ CommandSource = (*LazyCursor)(nil)

// NewLazyCursor returns a lazily clipping cursor over p. If clip is nil,
// [ClipRing] is used. The only error is an [*InvalidRectangleError] for
// invalid r.
func NewLazyCursor(p Polygon, r Rect, clip RingClipper) (*LazyCursor, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if clip == nil {
		clip = ClipRing
	}
	return &LazyCursor{
		src:     p,
		rect:    r,
		clip:    clip,
		clipped: make([][]Ring, p.NumRings()),
		done:    make([]bool, p.NumRings()),
	}, nil
}

// Rewind positions the cursor at the first command of the first clipped ring.
func (c *LazyCursor) Rewind() {
	c.in = 0
	c.out = 0
	c.vertex = 0
}

// Next returns the next command, clipping the next input ring if needed.
func (c *LazyCursor) Next() Command {
	for c.in < len(c.clipped) {
		if !c.done[c.in] {
			c.clipped[c.in] = clipOriented(c.src.Ring(c.in), c.rect, c.clip)
			c.done[c.in] = true
			Logger().Debug("clipped ring lazily", "ring", c.in, "results", len(c.clipped[c.in]))
		}
		res := c.clipped[c.in]
		if c.out >= len(res) {
			c.in++
			c.out = 0
			c.vertex = 0
			continue
		}
		r := res[c.out]
		n := ringLen(r)
		if c.vertex > n+1 || n == 0 {
			c.out++
			c.vertex = 0
			continue
		}
		cmd := ringCommand(r, n, c.vertex)
		c.vertex++
		return cmd
	}
	return End()
}

// Stream rewinds src and returns its commands as an iterator. The iterator
// yields the terminating End and then stops. Each iteration rewinds src
// again.
func Stream(src CommandSource) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		src.Rewind()
		for {
			cmd := src.Next()
			if !yield(cmd) || cmd.Kind == EndKind {
				return
			}
		}
	}
}

// Commands returns p's command stream, including the terminating End. Each
// iteration uses a fresh [Cursor].
func (p Polygon) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for cmd := range Stream(NewCursor(p)) {
			if !yield(cmd) {
				return
			}
		}
	}
}
