package rectclip

import (
	"fmt"
)

// Count rewinds src and returns the number of commands it produces before
// End. ClosePath commands are counted.
func Count(src CommandSource) int {
	src.Rewind()
	var n int
	for src.Next().Kind != EndKind {
		n++
	}
	return n
}

// Collect rewinds src and rebuilds a polygon from its commands.
//
// The command stream doesn't carry ring roles, so Collect assigns them by
// nesting: a ring that lies within an even number of the other rings, as
// decided by [Ring.Within], is an exterior, otherwise it is a hole. Closing points are dropped and
// rings with fewer than three points are skipped.
//
// Streams that don't follow the MoveTo, LineTo*, ClosePath protocol return an
// error matching [ErrMalformedStream].
func Collect(src CommandSource) (Polygon, error) {
	src.Rewind()
	var (
		rings []Ring
		cur   Ring
		open  bool
	)
	for i := 0; ; i++ {
		cmd := src.Next()
		switch cmd.Kind {
		case MoveToKind:
			if open {
				return Polygon{}, fmt.Errorf("%w: command %d: MoveTo inside open ring", ErrMalformedStream, i)
			}
			cur = Ring{cmd.Pt}
			open = true
		case LineToKind:
			if !open {
				return Polygon{}, fmt.Errorf("%w: command %d: LineTo without MoveTo", ErrMalformedStream, i)
			}
			cur = append(cur, cmd.Pt)
		case ClosePathKind:
			if !open {
				return Polygon{}, fmt.Errorf("%w: command %d: ClosePath without MoveTo", ErrMalformedStream, i)
			}
			if r := cur.Normalize(); len(r) >= 3 {
				rings = append(rings, r)
			}
			cur = nil
			open = false
		case EndKind:
			if open {
				return Polygon{}, fmt.Errorf("%w: command %d: End inside open ring", ErrMalformedStream, i)
			}
			return assignRoles(rings), nil
		default:
			return Polygon{}, fmt.Errorf("%w: command %d: unknown kind %d", ErrMalformedStream, i, cmd.Kind)
		}
	}
}

// assignRoles sorts rings into exteriors and holes by their nesting depth.
func assignRoles(rings []Ring) Polygon {
	var p Polygon
	for i, r := range rings {
		depth := 0
		for j, o := range rings {
			if i != j && r.Within(o) {
				depth++
			}
		}
		if depth%2 == 0 {
			p.Exteriors = append(p.Exteriors, r)
		} else {
			p.Holes = append(p.Holes, r)
		}
	}
	return p
}
