package rectclip

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of commands to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Command], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of commands to a string of SVG path commands
// and writes it to w. The sequence ends at the first End.
//
// The closing LineTo of each ring is written like any other line; SVG's Z
// then closes a zero-length segment, which renders identically.
func WriteSVG(w io.Writer, seq iter.Seq[Command], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	first := true
	for cmd := range seq {
		if err != nil {
			return err
		}
		if cmd.Kind == EndKind {
			break
		}
		if !first {
			write(space)
		}
		first = false
		switch cmd.Kind {
		case MoveToKind:
			writef("M%s,%s", format(cmd.Pt.X), format(cmd.Pt.Y))
		case LineToKind:
			writef("L%s,%s", format(cmd.Pt.X), format(cmd.Pt.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
