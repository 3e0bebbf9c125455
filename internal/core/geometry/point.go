package geometry

// Point is a location in drawing space. It shares Vector's representation
// but is a position rather than a displacement.
type Point struct {
	X, Y float64
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add translates the point by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{X: p.X - o.X, Y: p.Y - o.Y}
}

// Vec reinterprets the point as a displacement from the origin.
func (p Point) Vec() Vector {
	return Vector(p)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return p.Sub(o).Length()
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between two points.
func (p Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (p.X + o.X),
		Y: 0.5 * (p.Y + o.Y),
	}
}
