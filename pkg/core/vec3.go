package core

import (
	"math"
)

// Vec3 represents a 3D direction or displacement
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3FromPoints returns the displacement that carries origin onto dest
func NewVec3FromPoints(origin, dest Point3) Vec3 {
	return dest.Subtract(origin)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Scale is the scalar-on-the-left form of Multiply
func Scale(scalar float64, v Vec3) Vec3 {
	return v.Multiply(scalar)
}

// Divide returns the vector divided by a scalar.
// A zero divisor returns ErrDivisionByZero.
func (v Vec3) Divide(scalar float64) (Vec3, error) {
	if scalar == 0 {
		return Vec3{}, ErrDivisionByZero
	}
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - other.Y*v.Z,
		Y: -(v.X*other.Z - other.X*v.Z),
		Z: v.X*other.Y - other.X*v.Y,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and yields a *DegenerateVectorError.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, &DegenerateVectorError{Op: "normalize", Vector: v}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// UnitVector is Normalize for call sites that already guarantee a non-zero
// vector. It panics with *DegenerateVectorError otherwise; the renderer
// recovers that panic and reports it as a render error.
func (v Vec3) UnitVector() Vec3 {
	unit, err := v.Normalize()
	if err != nil {
		panic(err)
	}
	return unit
}

// Equals reports exact component equality
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}
