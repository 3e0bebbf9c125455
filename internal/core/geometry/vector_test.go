package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAlgebra(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(-1, 2)

	assert.Equal(t, Vec(2, 6), a.Add(b))
	assert.Equal(t, Vec(4, 2), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, Vec(-3, -4), a.Neg())
	assert.InDelta(t, 5.0, a.Dot(b), 1e-12)
	assert.InDelta(t, 10.0, a.Cross(b), 1e-12)
	assert.InDelta(t, 5.0, a.Length(), 1e-12)
	assert.InDelta(t, 25.0, a.LengthSquared(), 1e-12)
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(3, 4).Normalize()
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)
}

func TestZeroVectorNormalizesToZero(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Normalize())
}

func TestVectorPerpendicular(t *testing.T) {
	v := Vec(1, 0).Perpendicular()
	assert.Equal(t, Vec(0, 1), v)
	assert.InDelta(t, 0, v.Dot(Vec(1, 0)), 1e-12)
}

func TestAngleFromXAxis(t *testing.T) {
	assert.InDelta(t, 0, Vec(1, 0).AngleFromXAxis(), 1e-12)
	assert.InDelta(t, math.Pi/2, Vec(0, 1).AngleFromXAxis(), 1e-12)
	assert.InDelta(t, math.Pi, Vec(-1, 0).AngleFromXAxis(), 1e-12)
	assert.InDelta(t, -math.Pi/2, Vec(0, -1).AngleFromXAxis(), 1e-12)
}

func TestLerpQuarterOfTheWay(t *testing.T) {
	start := Vec(0, 0)
	end := Vec(40, 8)

	assert.Equal(t, Vec(10, 2), start.Lerp(end, 0.25))
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)

	assert.Equal(t, Pt(4, 6), p.Add(Vec(3, 4)))
	assert.Equal(t, Vec(-2, -2), p.Sub(Pt(3, 4)))
	assert.InDelta(t, 5.0, p.DistanceTo(Pt(4, 6)), 1e-12)
	assert.Equal(t, Pt(2, 3), p.Midpoint(Pt(3, 4)))
}
