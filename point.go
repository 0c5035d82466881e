package polyclipping

import (
	"fmt"
	"math"
	"strings"
)

// Point64 is a coordinate in 2D space with 64-bit integer precision. The
// Y-axis is inverted: smaller Y is higher up. All up/down terminology in this
// package (local minima and maxima in particular) refers to the inverted axis.
type Point64 struct {
	X, Y int64
}

func (p Point64) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect64 is an axis-aligned rectangle. Top is the smaller Y value given the
// inverted Y-axis.
type Rect64 struct {
	Left, Top, Right, Bottom int64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect64) Width() int64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect64) Height() int64 {
	return r.Bottom - r.Top
}

func (r Rect64) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Path is a sequence of vertices describing a polygon contour or a polyline.
type Path []Point64

func (p Path) String() string {
	sb := strings.Builder{}
	for i, pt := range p {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	return sb.String()
}

// Paths is a list of polygon contours or polylines.
type Paths []Path

func (ps Paths) String() string {
	sb := strings.Builder{}
	for _, p := range ps {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ClipType selects the boolean operation performed by Execute.
type ClipType int

const (
	Intersection ClipType = iota
	Union
	Difference
	Xor
)

func (ct ClipType) String() string {
	switch ct {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	}
	return "Unknown"
}

// PathType distinguishes subject paths from clip paths.
type PathType int

const (
	Subject PathType = iota
	Clip
)

func (pt PathType) String() string {
	if pt == Subject {
		return "Subject"
	}
	return "Clip"
}

// FillRule determines which regions of a (possibly self-intersecting) polygon
// are considered filled, based on the winding count of each region.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

func (fr FillRule) String() string {
	switch fr {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	}
	return "Unknown"
}

// horizontal marks the dx of horizontal edges.
var horizontal = math.Inf(-1)

// round converts to int64 rounding half away from zero.
func round(v float64) int64 {
	if v < 0.0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}

func isOdd(v int) bool {
	return v&1 != 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
