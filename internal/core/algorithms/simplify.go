package algorithms

import "github.com/draftline/draftline/internal/core/geometry"

// Simplify decimates a polyline to a simpler one with fewer points using the
// Ramer-Douglas-Peucker algorithm. The simplified curve never strays more
// than tolerance units from the original. Inputs of two points or fewer are
// returned unchanged.
func Simplify(points []geometry.Point, tolerance float64) []geometry.Point {
	if len(points) <= 2 {
		return append([]geometry.Point(nil), points...)
	}

	buffer := make([]geometry.Point, 0, len(points))
	buffer = append(buffer, points[0])
	buffer = simplifyInterior(points, tolerance, buffer)
	return append(buffer, points[len(points)-1])
}

// simplifyInterior appends every point strictly between the first and last
// that survives simplification, in order.
func simplifyInterior(points []geometry.Point, tolerance float64, buffer []geometry.Point) []geometry.Point {
	if len(points) < 3 {
		return buffer
	}

	chord := geometry.NewLine(points[0], points[len(points)-1])
	interior := points[1 : len(points)-1]

	farthest := -1
	maxDistance := 0.0
	for i, p := range interior {
		d := chord.PerpendicularDistanceTo(p)
		if farthest == -1 || d > maxDistance {
			farthest = i
			maxDistance = d
		}
	}

	if maxDistance <= tolerance {
		return buffer
	}

	// index into points rather than interior
	split := farthest + 1

	buffer = simplifyInterior(points[:split+1], tolerance, buffer)
	buffer = append(buffer, points[split])
	return simplifyInterior(points[split:], tolerance, buffer)
}
