package core

import "math"

// Vec4 is a 3D vector in homogeneous coordinates. W = 1 marks a point in
// space, W = 0 marks a direction (or translation). The same arithmetic
// applies to both; the tag predicates let consumers reject the wrong kind.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewPoint creates a homogeneous point (w = 1)
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewDirection creates a homogeneous direction (w = 0)
func NewDirection(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the vector is tagged as a point
func (v Vec4) IsPoint() bool {
	return v.W == 1
}

// IsDirection reports whether the vector is tagged as a direction
func (v Vec4) IsDirection() bool {
	return v.W == 0
}

// Add returns the sum of two vectors. Point + direction is a point,
// direction + direction is a direction; the w components carry the tag.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors. Point - point is a
// direction, point - direction is a point.
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar. Only directions scale
// without losing their tag; scaling a point produces an untagged vector.
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Negate returns the negative of the vector
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product over the spatial components
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the 3D cross product of two directions, tagged as a direction
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
		W: 0,
	}
}

// Length returns the magnitude of the spatial components
func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the spatial components
func (v Vec4) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction, preserving the tag
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{0, 0, 0, v.W}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W}
}
