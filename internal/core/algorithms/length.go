package algorithms

import (
	"fmt"
	"math"

	"github.com/draftline/draftline/internal/core/geometry"
)

// Length calculates the length of a shape. A lone point has length zero and
// an arc's length is its radius times the magnitude of its sweep.
func Length(g geometry.Geometry) float64 {
	switch g := g.(type) {
	case geometry.Point:
		return 0
	case geometry.Line:
		return g.Length()
	case geometry.Arc:
		return g.Radius() * math.Abs(g.SweepAngle())
	default:
		panic(fmt.Sprintf("algorithms: unknown geometry %T", g))
	}
}
