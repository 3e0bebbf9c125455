package algorithms

import (
	"fmt"

	"github.com/draftline/draftline/internal/core/geometry"
)

// Translate returns the shape shifted by a displacement.
func Translate(g geometry.Geometry, displacement geometry.Vector) geometry.Geometry {
	switch g := g.(type) {
	case geometry.Point:
		return g.Add(displacement)
	case geometry.Line:
		return geometry.NewLine(g.Start.Add(displacement), g.End.Add(displacement))
	case geometry.Arc:
		return g.Translate(displacement)
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}

// Scale returns the shape scaled uniformly by factor about a base point. The
// factor must be strictly positive.
func Scale(g geometry.Geometry, factor float64, base geometry.Point) geometry.Geometry {
	if factor <= 0 {
		panic(fmt.Sprintf("algorithms: scale factor must be positive, got %g", factor))
	}

	scalePoint := func(p geometry.Point) geometry.Point {
		return base.Add(p.Sub(base).Scale(factor))
	}

	switch g := g.(type) {
	case geometry.Point:
		return scalePoint(g)
	case geometry.Line:
		return geometry.NewLine(scalePoint(g.Start), scalePoint(g.End))
	case geometry.Arc:
		return geometry.NewArc(
			scalePoint(g.Centre()),
			g.Radius()*factor,
			g.StartAngle(),
			g.SweepAngle(),
		)
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}
