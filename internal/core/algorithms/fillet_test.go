package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftline/draftline/internal/core/geometry"
)

func TestFillet90DegreeAnticlockwiseCorner(t *testing.T) {
	start := geometry.Pt(0, 0)
	corner := geometry.Pt(100, 0)
	end := geometry.Pt(100, 100)

	got, err := Fillet(start, corner, end, 20)

	require.NoError(t, err)
	assert.InDelta(t, 80, got.Centre().X, 1e-9)
	assert.InDelta(t, 20, got.Centre().Y, 1e-9)
	assert.InDelta(t, 20, got.Radius(), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, got.StartAngle(), 1e-9)
	assert.InDelta(t, math.Pi/2, got.SweepAngle(), 1e-9)
}

func TestFillet90DegreeClockwiseCorner(t *testing.T) {
	start := geometry.Pt(100, 100)
	corner := geometry.Pt(100, 0)
	end := geometry.Pt(0, 0)

	got, err := Fillet(start, corner, end, 20)

	require.NoError(t, err)
	assert.InDelta(t, 80, got.Centre().X, 1e-9)
	assert.InDelta(t, 20, got.Centre().Y, 1e-9)
	assert.InDelta(t, 20, got.Radius(), 1e-9)
	assert.InDelta(t, 0, got.StartAngle(), 1e-9)
	assert.InDelta(t, -math.Pi/2, got.SweepAngle(), 1e-9)
}

func TestFilletClockwiseTopRightCorner(t *testing.T) {
	start := geometry.Pt(0, 10)
	corner := geometry.Pt(10, 10)
	end := geometry.Pt(10, 0)

	got, err := Fillet(start, corner, end, 5)

	require.NoError(t, err)
	assert.InDelta(t, 5, got.Centre().X, 1e-9)
	assert.InDelta(t, 5, got.Centre().Y, 1e-9)
	assert.InDelta(t, 5, got.Radius(), 1e-9)
	assert.InDelta(t, math.Pi/2, got.StartAngle(), 1e-9)
	assert.InDelta(t, -math.Pi/2, got.SweepAngle(), 1e-9)
}

func TestFilletTrimsCentreOffEachLeg(t *testing.T) {
	got, err := Fillet(geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), 20)

	require.NoError(t, err)
	// the arc starts where the incoming leg was trimmed and ends where the
	// outgoing leg resumes
	arcStart := got.Start()
	arcEnd := got.End()
	assert.InDelta(t, 80, arcStart.X, 1e-9)
	assert.InDelta(t, 0, arcStart.Y, 1e-9)
	assert.InDelta(t, 100, arcEnd.X, 1e-9)
	assert.InDelta(t, 20, arcEnd.Y, 1e-9)
}

func TestFilletCollinearLines(t *testing.T) {
	start := geometry.Pt(90, 0)
	corner := geometry.Pt(100, 0)

	_, err := Fillet(start, corner, start, 20)

	assert.ErrorIs(t, err, ErrCollinearLines)
}

func TestFilletInsufficientLength(t *testing.T) {
	start := geometry.Pt(90, 0)
	corner := geometry.Pt(100, 0)
	end := geometry.Pt(100, 1000)

	_, err := Fillet(start, corner, end, 20)

	var insufficient *InsufficientLengthError
	require.True(t, errors.As(err, &insufficient))
	assert.InDelta(t, 20, insufficient.Required, 1e-9)
	assert.InDelta(t, 10, insufficient.Available, 1e-9)
}

func TestFilletRadiusLargerThanShortLeg(t *testing.T) {
	_, err := Fillet(geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), 150)

	var insufficient *InsufficientLengthError
	require.True(t, errors.As(err, &insufficient))
	assert.Greater(t, insufficient.Required, insufficient.Available)
}

func TestFilletExactFitClampsInsteadOfFailing(t *testing.T) {
	// 90 degree corner with legs of exactly the trim length
	got, err := Fillet(geometry.Pt(0, 0), geometry.Pt(20, 0), geometry.Pt(20, 20), 20)

	require.NoError(t, err)
	assert.InDelta(t, 20, got.Radius(), 1e-9)
}
