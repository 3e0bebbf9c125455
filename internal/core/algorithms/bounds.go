// Package algorithms computes derived quantities over the geometry kernel:
// bounding boxes, closest points, lengths, arc approximation, line
// simplification, fillets and affine helpers. Each algorithm dispatches over
// the closed Geometry sum.
package algorithms

import (
	"fmt"
	"math"

	"github.com/draftline/draftline/internal/core/geometry"
)

// Bounds calculates the axis-aligned bounding box of a shape.
func Bounds(g geometry.Geometry) geometry.BoundingBox {
	switch g := g.(type) {
	case geometry.Point:
		return geometry.NewBoundingBox(g, g)
	case geometry.Line:
		return geometry.NewBoundingBox(g.Start, g.End)
	case geometry.Arc:
		return arcBounds(g)
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}

// arcBounds starts with the box around the arc's endpoints, then pushes it
// out through each axis-aligned extremum of the circle the arc's span
// actually reaches. Arcs that bulge past their chord are bounded correctly.
func arcBounds(arc geometry.Arc) geometry.BoundingBox {
	centre := arc.Centre()
	r := arc.Radius()

	bounds := geometry.NewBoundingBox(arc.Start(), arc.End())

	for _, extremum := range []struct {
		angle  float64
		offset geometry.Vector
	}{
		{0, geometry.Vec(r, 0)},
		{math.Pi / 2, geometry.Vec(0, r)},
		{math.Pi, geometry.Vec(-r, 0)},
		{3 * math.Pi / 2, geometry.Vec(0, -r)},
	} {
		if containsCircleAngle(arc, extremum.angle) {
			bounds = bounds.ExpandedToInclude(centre.Add(extremum.offset))
		}
	}

	return bounds
}

// containsCircleAngle checks whether the arc's angular span covers an angle
// on the circle. The angular distance from the start angle is reduced into
// [0, 2*pi) along the sweep direction and compared against the sweep, so the
// check is exact for any start angle, either winding, and spans reaching
// past a revolution.
func containsCircleAngle(arc geometry.Arc, angle float64) bool {
	sweep := arc.SweepAngle()
	if math.Abs(sweep) >= 2*math.Pi {
		return true
	}
	if sweep >= 0 {
		return positiveAngle(angle-arc.StartAngle()) <= sweep
	}
	return positiveAngle(arc.StartAngle()-angle) <= -sweep
}
