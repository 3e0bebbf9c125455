package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftline/draftline/internal/core/geometry"
)

func TestTranslatePoint(t *testing.T) {
	got := Translate(geometry.Pt(1, 2), geometry.Vec(10, -5))

	assert.Equal(t, geometry.Pt(11, -3), got)
}

func TestTranslateLine(t *testing.T) {
	line := geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(3, 4))

	got := Translate(line, geometry.Vec(1, 1))

	assert.Equal(t, geometry.NewLine(geometry.Pt(1, 1), geometry.Pt(4, 5)), got)
}

func TestTranslateArcMovesOnlyTheCentre(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(0, 0), 10, 0, math.Pi/2)

	got, ok := Translate(arc, geometry.Vec(5, 5)).(geometry.Arc)

	require.True(t, ok)
	assert.Equal(t, geometry.Pt(5, 5), got.Centre())
	assert.Equal(t, arc.Radius(), got.Radius())
	assert.Equal(t, arc.StartAngle(), got.StartAngle())
	assert.Equal(t, arc.SweepAngle(), got.SweepAngle())
}

func TestScalePointAboutBase(t *testing.T) {
	got := Scale(geometry.Pt(4, 6), 2, geometry.Pt(2, 2))

	assert.Equal(t, geometry.Pt(6, 10), got)
}

func TestScaleLineAboutOrigin(t *testing.T) {
	line := geometry.NewLine(geometry.Pt(1, 1), geometry.Pt(3, 4))

	got := Scale(line, 3, geometry.Pt(0, 0))

	assert.Equal(t, geometry.NewLine(geometry.Pt(3, 3), geometry.Pt(9, 12)), got)
}

func TestScaleArcKeepsAngles(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(10, 0), 5, math.Pi/4, math.Pi)

	got, ok := Scale(arc, 2, geometry.Pt(0, 0)).(geometry.Arc)

	require.True(t, ok)
	assert.Equal(t, geometry.Pt(20, 0), got.Centre())
	assert.InDelta(t, 10, got.Radius(), 1e-12)
	assert.Equal(t, arc.StartAngle(), got.StartAngle())
	assert.Equal(t, arc.SweepAngle(), got.SweepAngle())
}

func TestScalePreservesLengthRatio(t *testing.T) {
	arc := geometry.NewArc(geometry.Pt(3, 3), 7, 0, math.Pi/3)

	scaled := Scale(arc, 2.5, geometry.Pt(1, 1))

	assert.InDelta(t, 2.5*Length(arc), Length(scaled), 1e-9)
}

func TestScaleRejectsNonPositiveFactor(t *testing.T) {
	assert.Panics(t, func() {
		Scale(geometry.Pt(0, 0), 0, geometry.Pt(0, 0))
	})
	assert.Panics(t, func() {
		Scale(geometry.Pt(0, 0), -1, geometry.Pt(0, 0))
	})
}
