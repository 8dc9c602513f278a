package rectclip

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRectangle is matched by every [*InvalidRectangleError].
	ErrInvalidRectangle = errors.New("invalid clip rectangle")
	// ErrMalformedStream is returned by [Collect] for command streams that
	// don't follow the MoveTo, LineTo*, ClosePath protocol.
	ErrMalformedStream = errors.New("malformed command stream")
	// ErrUnknownStrategy is returned by [LookupStrategy].
	ErrUnknownStrategy = errors.New("unknown clipping strategy")
)

// InvalidRectangleError describes a clip rectangle whose minimum corner
// exceeds its maximum corner, or which contains NaN.
type InvalidRectangleError struct {
	Rect Rect
}

func (err *InvalidRectangleError) Error() string {
	return fmt.Sprintf("invalid clip rectangle: min %s, max %s", err.Rect.Min(), err.Rect.Max())
}

func (err *InvalidRectangleError) Is(target error) bool {
	return target == ErrInvalidRectangle
}
