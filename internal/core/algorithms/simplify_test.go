package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftline/draftline/internal/core/geometry"
)

func TestSimplifyShortInputsUnchanged(t *testing.T) {
	assert.Empty(t, Simplify(nil, 1.0))

	one := []geometry.Point{geometry.Pt(0, 0)}
	assert.Equal(t, one, Simplify(one, 1.0))

	two := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 2)}
	assert.Equal(t, two, Simplify(two, 1.0))
}

func TestSimplifyCollinearPointsToEndpoints(t *testing.T) {
	points := make([]geometry.Point, 100)
	for i := range points {
		points[i] = geometry.Pt(float64(i), 0)
	}

	got := Simplify(points, 0.1)

	assert.Equal(t, []geometry.Point{points[0], points[99]}, got)
}

func TestSimplifyJitterBelowTolerance(t *testing.T) {
	maxJitter := 0.1
	points := make([]geometry.Point, 100)
	for i := range points {
		jitter := maxJitter * math.Sin(float64(i)/100.0*math.Pi)
		points[i] = geometry.Pt(float64(i), jitter)
	}

	got := Simplify(points, maxJitter*2)

	assert.Equal(t, []geometry.Point{points[0], points[99]}, got)
}

func TestSimplifyKeepsSalientCorners(t *testing.T) {
	// traced from a hand-drawn curve with a ruler
	line := []geometry.Point{
		geometry.Pt(-43, 8),
		geometry.Pt(-24, 19),
		geometry.Pt(-13, 23),
		geometry.Pt(-8, 36),
		geometry.Pt(7, 40),
		geometry.Pt(24, 12),
		geometry.Pt(44, -6),
		geometry.Pt(57, 2),
		geometry.Pt(70, 7),
	}
	want := []geometry.Point{line[0], line[4], line[6], line[8]}

	got := Simplify(line, 10.0)

	assert.Equal(t, want, got)
}
