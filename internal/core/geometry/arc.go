package geometry

import (
	"fmt"
	"math"
)

// Arc is a segment of a circle. The sweep angle is signed: positive sweeps
// run anticlockwise, negative sweeps clockwise. Its magnitude never usefully
// exceeds a full revolution.
type Arc struct {
	centre     Point
	radius     float64
	startAngle float64
	sweepAngle float64
}

// NewArc creates an Arc from its centre, radius and angular extent. The
// radius must be strictly positive; violating that is a programmer error and
// panics.
func NewArc(centre Point, radius, startAngle, sweepAngle float64) Arc {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: arc radius must be positive, got %g", radius))
	}

	return Arc{
		centre:     centre,
		radius:     radius,
		startAngle: startAngle,
		sweepAngle: sweepAngle,
	}
}

// ArcFromThreePoints finds the arc which starts at start, passes through
// middle and ends at end. Reports false when the points are collinear and no
// arc exists.
func ArcFromThreePoints(start, middle, end Point) (Arc, bool) {
	centre, ok := CentreOfThreePoints(start, middle, end)
	if !ok {
		return Arc{}, false
	}

	radius := start.Sub(centre).Length()
	startAngle := start.Sub(centre).AngleFromXAxis()
	sweepAngle := sweepAngleFromThreePoints(start, middle, end, centre)

	return NewArc(centre, radius, startAngle, sweepAngle), true
}

// sweepAngleFromThreePoints picks the signed sweep so that travelling from
// start towards end visits middle. When the raw angular difference disagrees
// with the winding of the three points, wrap by a full revolution so the arc
// goes the long way around on the correct side.
func sweepAngleFromThreePoints(start, middle, end, centre Point) float64 {
	startRay := start.Sub(centre)
	endRay := end.Sub(centre)
	orientation := OrientationOf(start, middle, end)
	difference := endRay.AngleFromXAxis() - startRay.AngleFromXAxis()

	switch {
	case difference > 0 && orientation == Clockwise:
		return difference - 2*math.Pi
	case difference < 0 && orientation == Anticlockwise:
		return difference + 2*math.Pi
	default:
		return difference
	}
}

// Centre returns the arc's centre point.
func (a Arc) Centre() Point { return a.centre }

// Radius returns the arc's radius.
func (a Arc) Radius() float64 { return a.radius }

// StartAngle returns the angle from the centre to the arc's first point.
func (a Arc) StartAngle() float64 { return a.startAngle }

// SweepAngle returns the arc's signed angular extent.
func (a Arc) SweepAngle() float64 { return a.sweepAngle }

// EndAngle returns the angle from the centre to the arc's last point.
func (a Arc) EndAngle() float64 { return a.startAngle + a.sweepAngle }

// IsAnticlockwise reports whether the arc sweeps anticlockwise.
func (a Arc) IsAnticlockwise() bool { return a.sweepAngle > 0 }

// IsClockwise reports whether the arc sweeps clockwise.
func (a Arc) IsClockwise() bool { return a.sweepAngle < 0 }

// Start returns the arc's first point.
func (a Arc) Start() Point { return a.PointAt(0) }

// End returns the arc's last point.
func (a Arc) End() Point { return a.PointAt(a.sweepAngle) }

// PointAt returns the point on the arc at the given signed angular offset
// from the start. Offsets past the sweep angle land on the arc's underlying
// circle rather than the arc itself.
func (a Arc) PointAt(angle float64) Point {
	sin, cos := math.Sincos(a.startAngle + angle)
	return a.centre.Add(Vec(a.radius*cos, a.radius*sin))
}

// ContainsAngle reports whether an angle lies between the start and end
// angles, taken as an unordered pair so reversed sweeps behave sensibly.
func (a Arc) ContainsAngle(angle float64) bool {
	lo, hi := a.StartAngle(), a.EndAngle()
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo <= angle && angle <= hi
}

// IsMinorArc reports whether the arc spans half a revolution or less.
func (a Arc) IsMinorArc() bool {
	return math.Abs(a.sweepAngle) <= math.Pi
}

// IsMajorArc reports whether the arc spans more than half a revolution.
func (a Arc) IsMajorArc() bool { return !a.IsMinorArc() }

// Translate returns the arc shifted by a displacement.
func (a Arc) Translate(v Vector) Arc {
	moved := a
	moved.centre = a.centre.Add(v)
	return moved
}
