package rectclip

import (
	"fmt"
)

type CommandKind int

const (
	// End terminates a command stream. It carries no point.
	EndKind CommandKind = iota
	// Move directly to the point without drawing anything, starting a new
	// ring.
	MoveToKind
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the current ring.
	ClosePathKind
)

func (k CommandKind) String() string {
	switch k {
	case EndKind:
		return "End"
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidCommand"
	}
}

// Command is one element of a vertex-command stream.
//
// A valid stream consists of zero or more rings, each a MoveTo followed by
// zero or more LineTo and a ClosePath, terminated by exactly one End. The zero
// value is End.
type Command struct {
	Kind CommandKind
	Pt   Point
}

func (c Command) String() string {
	switch c.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s%s", c.Kind, c.Pt)
	default:
		return c.Kind.String()
	}
}

// IsVertex reports whether c carries a point.
func (c Command) IsVertex() bool {
	return c.Kind == MoveToKind || c.Kind == LineToKind
}

func (c Command) Transform(aff Affine) Command {
	if c.IsVertex() {
		c.Pt = c.Pt.Transform(aff)
	}
	return c
}

func MoveTo(pt Point) Command {
	return Command{Kind: MoveToKind, Pt: pt}
}

func LineTo(pt Point) Command {
	return Command{Kind: LineToKind, Pt: pt}
}

func ClosePath() Command {
	return Command{Kind: ClosePathKind}
}

func End() Command {
	return Command{Kind: EndKind}
}

// CommandSource is a restartable, pull-based producer of commands, such as a
// [Cursor] or a [LazyCursor].
//
// Rewind positions the source at its first command. Next returns the next
// command; once the stream is exhausted it returns End until Rewind is
// called again.
type CommandSource interface {
	Rewind()
	Next() Command
}
