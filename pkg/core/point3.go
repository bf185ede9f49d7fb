package core

// Point3 represents a position in world space
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add moves the point by a displacement
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the displacement from other to p
func (p Point3) Subtract(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Negate mirrors the point through the origin
func (p Point3) Negate() Point3 {
	return Point3{-p.X, -p.Y, -p.Z}
}

// Vec returns the displacement of p from the origin
func (p Point3) Vec() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// DistanceTo returns the euclidean distance between two points
func (p Point3) DistanceTo(other Point3) float64 {
	return p.Subtract(other).Length()
}
