package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		name                 string
		first, second, third Point
		want                 Orientation
	}{
		{"anticlockwise", Pt(1, 0), Pt(0, 1), Pt(-1, 0), Anticlockwise},
		{"clockwise", Pt(-1, 0), Pt(0, 1), Pt(1, 0), Clockwise},
		{"collinear", Pt(0, 0), Pt(1, 0), Pt(2, 0), Collinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrientationOf(tt.first, tt.second, tt.third))
		})
	}
}

func TestCentreOfThreePoints(t *testing.T) {
	centre, ok := CentreOfThreePoints(Pt(1, 0), Pt(-1, 0), Pt(0, 1))

	require.True(t, ok)
	assert.InDelta(t, 0, centre.X, 1e-12)
	assert.InDelta(t, 0, centre.Y, 1e-12)
}

func TestCentreOfCollinearPointsHasNoSolution(t *testing.T) {
	_, ok := CentreOfThreePoints(Pt(0, 0), Pt(10, 0), Pt(20, 0))

	assert.False(t, ok)
}
