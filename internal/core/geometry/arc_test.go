package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcEndpoints(t *testing.T) {
	arc := NewArc(Pt(0, 0), 10, 0, math.Pi/2)

	start := arc.Start()
	assert.InDelta(t, 10, start.X, 1e-9)
	assert.InDelta(t, 0, start.Y, 1e-9)

	end := arc.End()
	assert.InDelta(t, 0, end.X, 1e-9)
	assert.InDelta(t, 10, end.Y, 1e-9)
}

func TestPointAtCoversWholeSweep(t *testing.T) {
	arc := NewArc(Pt(3, -2), 7, math.Pi/3, -math.Pi)

	assert.Equal(t, arc.Start(), arc.PointAt(0))
	assert.Equal(t, arc.End(), arc.PointAt(arc.SweepAngle()))
}

func TestContainsAngle(t *testing.T) {
	quarter := NewArc(Pt(0, 0), 1, 0, math.Pi/2)
	eighth := NewArc(Pt(0, 0), 1, 0, math.Pi/4)
	reversed := NewArc(Pt(0, 0), 1, math.Pi/4, -math.Pi/4)

	tests := []struct {
		name  string
		arc   Arc
		angle float64
		want  bool
	}{
		{"middle of quadrant", quarter, math.Pi / 4, true},
		{"start of arc", quarter, 0, true},
		{"end of arc", quarter, math.Pi / 2, true},
		{"outside of arc", eighth, math.Pi / 2, false},
		{"inside reverse arc", reversed, math.Pi / 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arc.ContainsAngle(tt.angle))
		})
	}
}

func TestArcFromThreePoints(t *testing.T) {
	a := Pt(10, 0)
	b := Pt(0, 10)
	c := Pt(-10, 0)

	got, ok := ArcFromThreePoints(a, b, c)

	require.True(t, ok)
	assert.InDelta(t, 0, got.Centre().X, 1e-9)
	assert.InDelta(t, 0, got.Centre().Y, 1e-9)
	assert.InDelta(t, 10, got.Radius(), 1e-9)
	assert.InDelta(t, 0, got.StartAngle(), 1e-9)
	assert.InDelta(t, math.Pi, got.SweepAngle(), 1e-9)
	assert.True(t, got.IsAnticlockwise())
}

func TestClockwiseArcFromThreePoints(t *testing.T) {
	a := Pt(10, 0)
	b := Pt(0, 10)
	c := Pt(-10, 0)

	got, ok := ArcFromThreePoints(c, b, a)

	require.True(t, ok)
	assert.InDelta(t, math.Pi, got.StartAngle(), 1e-9)
	assert.InDelta(t, -math.Pi, got.SweepAngle(), 1e-9)
	assert.True(t, got.IsClockwise())
}

func TestArcFromCollinearPoints(t *testing.T) {
	_, ok := ArcFromThreePoints(Pt(0, 0), Pt(10, 0), Pt(20, 0))

	assert.False(t, ok)
}

func TestNegativeRadiusPanics(t *testing.T) {
	assert.Panics(t, func() { NewArc(Pt(0, 0), -1, 0, math.Pi) })
	assert.Panics(t, func() { NewArc(Pt(0, 0), 0, 0, math.Pi) })
}

func TestMinorAndMajorArcs(t *testing.T) {
	minor := NewArc(Pt(0, 0), 1, 0, math.Pi)
	major := NewArc(Pt(0, 0), 1, 0, 3*math.Pi/2)

	assert.True(t, minor.IsMinorArc())
	assert.False(t, minor.IsMajorArc())
	assert.True(t, major.IsMajorArc())
}
