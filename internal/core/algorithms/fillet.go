package algorithms

import (
	"errors"
	"fmt"
	"math"

	"github.com/draftline/draftline/internal/core/geometry"
)

// ErrCollinearLines is returned when the edges meeting at the corner are
// collinear: there is no corner to round.
var ErrCollinearLines = errors.New("cannot fillet collinear lines")

// InsufficientLengthError is returned when the edges aren't long enough to
// trim back by the amount the requested radius needs.
type InsufficientLengthError struct {
	// Required is the length that would have to be removed from each edge.
	Required float64
	// Available is the length of the shorter edge.
	Available float64
}

func (e *InsufficientLengthError) Error() string {
	return fmt.Sprintf(
		"edges are not long enough to fillet: need %g but only %g is available",
		e.Required, e.Available,
	)
}

// filletEpsilon absorbs floating-point noise when comparing the trim length
// against the shorter edge and when detecting collinear corners.
const filletEpsilon = 1e-6

// Fillet finds the arc which rounds the corner formed by travelling from
// start to corner to end with the given radius. The trim length
// radius*tan(|turn|/2) is removed from each edge; a trim length epsilon-equal
// to the shorter edge clamps rather than failing.
func Fillet(start, corner, end geometry.Point, radius float64) (geometry.Arc, error) {
	incoming := geometry.NewLine(start, corner)
	outgoing := geometry.NewLine(corner, end)

	angle1 := incoming.Displacement().AngleFromXAxis()
	angle2 := outgoing.Displacement().AngleFromXAxis()

	turn := normalizeSigned(angle2 - angle1)

	if math.Abs(turn) < filletEpsilon || math.Abs(math.Abs(turn)-math.Pi) < filletEpsilon {
		return geometry.Arc{}, ErrCollinearLines
	}

	// Bisect the angle between the edges and apply Pythagoras: rounding two
	// straight edges with a single arc is always symmetrical, so the same
	// length comes off each edge.
	lengthToRemove := radius * math.Abs(math.Tan(turn/2))

	shortest := math.Min(incoming.Length(), outgoing.Length())

	switch {
	case math.Abs(lengthToRemove-shortest) < filletEpsilon:
		// just barely too short: clamp instead of failing
		lengthToRemove = shortest
	case lengthToRemove > shortest:
		return geometry.Arc{}, &InsufficientLengthError{
			Required:  lengthToRemove,
			Available: shortest,
		}
	}

	startPoint := corner.Add(incoming.Direction().Scale(lengthToRemove).Neg())

	// The centre sits radius units perpendicular to the incoming edge, on
	// the side the corner turns towards.
	var startToCentre geometry.Vector
	if turn >= 0 {
		startToCentre = rTheta(radius, angle1-math.Pi/2)
	} else {
		startToCentre = rTheta(radius, angle1+math.Pi/2)
	}

	centre := startPoint.Add(startToCentre.Neg())

	return geometry.NewArc(
		centre,
		startToCentre.Length(),
		positiveAngle(startToCentre.AngleFromXAxis()),
		turn,
	), nil
}

// rTheta is the vector of the given length pointing along angle.
func rTheta(length, angle float64) geometry.Vector {
	sin, cos := math.Sincos(angle)
	return geometry.Vec(length*cos, length*sin)
}

// normalizeSigned wraps an angle into (-pi, pi].
func normalizeSigned(angle float64) float64 {
	wrapped := math.Mod(angle+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

// positiveAngle wraps an angle into [0, 2*pi).
func positiveAngle(angle float64) float64 {
	wrapped := math.Mod(angle, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < filletEpsilon
}
