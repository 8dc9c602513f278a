package rectclip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative tolerance, for points produced by
// interpolation.
var approx = cmpopts.EquateApprox(0, 1e-12)

var approxNaN = cmpopts.EquateNaNs()

// sliceSource is a CommandSource over a fixed slice of commands.
type sliceSource struct {
	cmds []Command
	i    int
}

func (s *sliceSource) Rewind() { s.i = 0 }

func (s *sliceSource) Next() Command {
	if s.i >= len(s.cmds) {
		return End()
	}
	cmd := s.cmds[s.i]
	s.i++
	return cmd
}

func collectCommands(src CommandSource) []Command {
	var out []Command
	for cmd := range Stream(src) {
		out = append(out, cmd)
	}
	return out
}

// The polygon and clip box of the polygon clipping benchmark.
var (
	referenceExterior = Ring{
		Pt(155, 203), Pt(233, 454), Pt(315, 340), Pt(421, 446), Pt(463, 324),
		Pt(559, 466), Pt(665, 253), Pt(528, 178), Pt(394, 229), Pt(329, 138),
		Pt(212, 134), Pt(183, 228), Pt(200, 264),
	}
	referenceHole = Ring{
		Pt(313, 190), Pt(440, 256), Pt(470, 248), Pt(510, 305), Pt(533, 237),
		Pt(613, 263), Pt(553, 397), Pt(455, 262), Pt(405, 378), Pt(343, 287),
		Pt(249, 334), Pt(229, 191),
	}
	referenceRect = Rect{181, 106, 631, 470}

	referenceClippedExterior = Ring{
		Pt(181, 286.6666666666667), Pt(233, 454), Pt(315, 340), Pt(421, 446),
		Pt(463, 324), Pt(559, 466), Pt(631, 321.3207547169811),
		Pt(631, 234.38686131386862), Pt(528, 178), Pt(394, 229), Pt(329, 138),
		Pt(212, 134), Pt(183, 228), Pt(200, 264), Pt(181, 238.24444444444444),
	}
)

func referencePolygon() Polygon {
	return NewPolygon(referenceExterior, referenceHole)
}
