package geometry

import "math"

// Vector is a 2D displacement in drawing space.
type Vector struct {
	X, Y float64
}

// Vec creates a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the vector's magnitude.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude, avoiding a square root.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to the zero vector.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// Perpendicular returns the vector rotated 90 degrees anticlockwise.
func (v Vector) Perpendicular() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// AngleFromXAxis returns the angle, in radians, between the positive X axis
// and the vector. The result is in (-pi, pi].
func (v Vector) AngleFromXAxis() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp linearly interpolates between two vectors. t=0 returns v, t=1
// returns o.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}
