package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftline/draftline/internal/core/geometry"
)

func TestApproximatePointAndLine(t *testing.T) {
	p := geometry.Pt(1, 2)
	line := geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(5, 5))

	assert.Equal(t, []geometry.Point{p}, Approximate(p, 1.0).Collect())
	assert.Equal(t, []geometry.Point{line.Start, line.End}, Approximate(line, 1.0).Collect())
}

func TestApproximateArcStaysWithinTolerance(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(0, 0), 100, 0, math.Pi/2)
	tolerance := 10.0

	pieces := Approximate(arc, tolerance).Collect()

	require.NotEmpty(t, pieces)
	for _, piece := range pieces {
		errorFromCircle := arc.Radius() - piece.Sub(arc.Centre()).Length()
		assert.Less(t, errorFromCircle, tolerance)
	}
	assert.Equal(t, arc.Start(), pieces[0])
	assert.Equal(t, arc.End(), pieces[len(pieces)-1])
}

func TestApproximateArcMinimumSegments(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(0, 0), 10, 0, math.Pi)

	// generous tolerance still yields at least 2 segments (3 points)
	assert.Equal(t, 3, Approximate(arc, 9.0).Count())

	// tolerance at or past the radius degrades to a single chord
	assert.Equal(t, 2, Approximate(arc, 10.0).Count())
	assert.Equal(t, 2, Approximate(arc, 0.0).Count())
	assert.Equal(t, 2, Approximate(arc, -1.0).Count())
}

func TestApproximateClockwiseArc(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(0, 0), 50, math.Pi/2, -math.Pi/2)

	pieces := Approximate(arc, 1.0).Collect()

	assert.Equal(t, arc.Start(), pieces[0])
	assert.Equal(t, arc.End(), pieces[len(pieces)-1])
	require.Greater(t, len(pieces), 2)
	// angles decrease monotonically along a clockwise arc
	for i := 1; i < len(pieces); i++ {
		prev := pieces[i-1].Sub(arc.Centre()).AngleFromXAxis()
		curr := pieces[i].Sub(arc.Centre()).AngleFromXAxis()
		assert.Less(t, curr, prev)
	}
}

func TestApproximateIsRestartable(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(0, 0), 100, 0, math.Pi/2)

	it := Approximate(arc, 10.0)

	first := it.Collect()
	second := it.Collect()
	assert.Equal(t, first, second)
}
