package algorithms

import (
	"fmt"

	"github.com/draftline/draftline/internal/core/geometry"
)

// Closest holds the solutions to a closest-point query. A query has either
// infinitely many solutions (every point on an arc is equidistant from its
// centre), exactly one, or a small set of equidistant ties.
type Closest struct {
	infinite bool
	points   []geometry.Point
}

// ClosestInfinite is the "infinitely many solutions" answer.
func ClosestInfinite() Closest {
	return Closest{infinite: true}
}

// ClosestOne wraps a single closest point.
func ClosestOne(p geometry.Point) Closest {
	return Closest{points: []geometry.Point{p}}
}

// ClosestMany wraps several equidistant closest points.
func ClosestMany(points ...geometry.Point) Closest {
	return Closest{points: points}
}

// IsInfinite reports whether there are infinitely many closest points.
func (c Closest) IsInfinite() bool { return c.infinite }

// Points returns the closest points. Empty when there are infinitely many.
func (c Closest) Points() []geometry.Point { return c.points }

// ClosestPoint finds the location on a shape which is closest to target.
func ClosestPoint(g geometry.Geometry, target geometry.Point) Closest {
	switch g := g.(type) {
	case geometry.Point:
		return ClosestOne(g)
	case geometry.Line:
		return closestOnLine(g, target)
	case geometry.Arc:
		return closestOnArc(g, target)
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}

func closestOnLine(line geometry.Line, target geometry.Point) Closest {
	length := line.Length()
	if length == 0 {
		return ClosestOne(line.Start)
	}

	displacement := line.Displacement()

	// equation of the line: start + t*displacement, where 0 <= t <= 1
	t := target.Sub(line.Start).Dot(displacement) / (length * length)

	switch {
	case t <= 0:
		return ClosestOne(line.Start)
	case t >= 1:
		return ClosestOne(line.End)
	default:
		return ClosestOne(line.Start.Add(displacement.Scale(t)))
	}
}

func closestOnArc(arc geometry.Arc, target geometry.Point) Closest {
	radial := target.Sub(arc.Centre())

	if radial.Length() == 0 {
		return ClosestInfinite()
	}

	angleOfClosest := radial.AngleFromXAxis()
	onCircle := arc.Centre().Add(radial.Normalize().Scale(arc.Radius()))

	if containsCircleAngle(arc, angleOfClosest) {
		return ClosestOne(onCircle)
	}

	toStart := arc.Start().DistanceTo(onCircle)
	toEnd := arc.End().DistanceTo(onCircle)

	switch {
	case approxEq(toStart, toEnd):
		return ClosestMany(arc.Start(), arc.End())
	case toStart < toEnd:
		return ClosestOne(arc.Start())
	default:
		return ClosestOne(arc.End())
	}
}
