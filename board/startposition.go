package board

import "github.com/pkg/errors"

// StartPosition names one of the five canonical starting corners/middle
// the external interfaces (§6) accept alongside a compact board string
// or a (seed, size, colors) tuple.
type StartPosition int

const (
	UpperLeft StartPosition = iota
	UpperRight
	LowerLeft
	LowerRight
	Middle
)

func (sp StartPosition) String() string {
	switch sp {
	case UpperLeft:
		return "upper-left"
	case UpperRight:
		return "upper-right"
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	case Middle:
		return "middle"
	default:
		return "unknown"
	}
}

// Point resolves the start position to a concrete grid cell for a board
// of the given size.
func (sp StartPosition) Point(size int) Point {
	switch sp {
	case UpperLeft:
		return Point{X: 0, Y: 0}
	case UpperRight:
		return Point{X: size - 1, Y: 0}
	case LowerLeft:
		return Point{X: 0, Y: size - 1}
	case LowerRight:
		return Point{X: size - 1, Y: size - 1}
	case Middle:
		return Point{X: size / 2, Y: size / 2}
	default:
		return Point{X: 0, Y: 0}
	}
}

// ParseStartPosition is the inverse of String, for CLI/config callers.
func ParseStartPosition(s string) (StartPosition, error) {
	switch s {
	case "upper-left":
		return UpperLeft, nil
	case "upper-right":
		return UpperRight, nil
	case "lower-left":
		return LowerLeft, nil
	case "lower-right":
		return LowerRight, nil
	case "middle":
		return Middle, nil
	default:
		return 0, errors.Errorf("board: unknown start position %q", s)
	}
}
