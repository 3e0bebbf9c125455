package geometry

// Orientation describes how three points wind around each other.
type Orientation uint8

const (
	// Clockwise points wind in a clockwise direction.
	Clockwise Orientation = iota
	// Anticlockwise points wind in an anticlockwise direction.
	Anticlockwise
	// Collinear points all lie on the same line.
	Collinear
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Anticlockwise:
		return "anticlockwise"
	case Collinear:
		return "collinear"
	default:
		return "unknown"
	}
}

// OrientationOf finds the winding of three points.
func OrientationOf(first, second, third Point) Orientation {
	value := (second.Y-first.Y)*(third.X-second.X) -
		(second.X-first.X)*(third.Y-second.Y)

	switch {
	case value > 0:
		return Clockwise
	case value < 0:
		return Anticlockwise
	default:
		return Collinear
	}
}

// CentreOfThreePoints finds the centre of the circle passing through three
// points by solving the circumcentre linear system. Reports false when the
// points are collinear and no such circle exists.
func CentreOfThreePoints(first, second, third Point) (Point, bool) {
	temp := second.Vec().Dot(second.Vec())
	bc := (first.Vec().Dot(first.Vec()) - temp) / 2.0
	cd := (temp - third.X*third.X - third.Y*third.Y) / 2.0
	determinant := (first.X-second.X)*(second.Y-third.Y) -
		(second.X-third.X)*(first.Y-second.Y)

	if determinant == 0 {
		return Point{}, false
	}

	x := (bc*(second.Y-third.Y) - cd*(first.Y-second.Y)) / determinant
	y := ((first.X-second.X)*cd - (second.X-third.X)*bc) / determinant

	return Point{X: x, Y: y}, true
}
