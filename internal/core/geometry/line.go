package geometry

import "math"

// degenerateBase is the threshold below which a line is treated as a single
// point when measuring perpendicular distance.
const degenerateBase = 100 * 2.220446049250313e-16 // 100 * machine epsilon

// Line is a straight segment connecting Start to End.
type Line struct {
	Start, End Point
}

// NewLine creates a Line between two points.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Displacement returns the vector from Start to End.
func (l Line) Displacement() Vector {
	return l.End.Sub(l.Start)
}

// Direction returns the displacement normalised to a unit vector.
func (l Line) Direction() Vector {
	return l.Displacement().Normalize()
}

// Length returns the line's length.
func (l Line) Length() float64 {
	return l.Displacement().Length()
}

// PerpendicularDistanceTo returns how close point would get if the line were
// extended forever. A degenerate (zero-length) line falls back to the plain
// distance to its single point.
func (l Line) PerpendicularDistanceTo(point Point) float64 {
	sideA := l.Start.Sub(point)
	sideB := l.End.Sub(point)
	area := sideA.Cross(sideB) / 2.0

	// area = base * height / 2
	base := l.Length()
	if base < degenerateBase {
		return sideA.Length()
	}
	return math.Abs(area) * 2.0 / base
}
