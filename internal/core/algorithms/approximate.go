package algorithms

import (
	"fmt"
	"math"

	"github.com/draftline/draftline/internal/core/geometry"
	"github.com/draftline/draftline/pkg/sequence"
)

// Approximate flattens a shape into a lazy, restartable sequence of points
// whose polyline stays within tolerance units of the original. Lines and
// points are already flat; arcs are subdivided.
func Approximate(g geometry.Geometry, tolerance float64) *sequence.Iterator[geometry.Point] {
	switch g := g.(type) {
	case geometry.Point:
		return sequence.From([]geometry.Point{g})
	case geometry.Line:
		return sequence.From([]geometry.Point{g.Start, g.End})
	case geometry.Arc:
		return approximateArc(g, tolerance)
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}

// approximateArc subdivides an arc into evenly spaced points, start and end
// inclusive.
//
// Draw a chord between points A and B on a circle with centre C, and bisect
// the angle ACB; the bisector meets the chord at D. The sagitta |CD| relates
// chord angle to worst-case error:
//
//	cos(theta/2) = |CD|/R = 1 - tolerance/R
//
// so theta is the widest chord angle whose error stays inside the tolerance,
// and the arc needs ceil(sweep/theta) segments.
func approximateArc(arc geometry.Arc, tolerance float64) *sequence.Iterator[geometry.Point] {
	steps := 1
	if tolerance > 0 && tolerance < arc.Radius() {
		cosThetaOnTwo := 1 - tolerance/arc.Radius()
		theta := 2 * math.Acos(cosThetaOnTwo)
		steps = int(math.Ceil(math.Abs(arc.SweepAngle()) / theta))
		if steps < 2 {
			steps = 2
		}
	}

	stepSize := arc.SweepAngle() / float64(steps)

	return sequence.Generate(steps+1, func(i int) geometry.Point {
		return arc.PointAt(float64(i) * stepSize)
	})
}
