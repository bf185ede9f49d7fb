package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

var (
	// ErrInvalidRadius is returned for spheres whose radius is not a positive finite number
	ErrInvalidRadius = errors.New("sphere radius must be positive")
	// ErrNilMaterial is returned when a shape is built without a material
	ErrNilMaterial = errors.New("shape material is nil")
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	if mat == nil {
		return nil, ErrNilMaterial
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Tangent rays count as misses
	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// The nearer crossing is always tried first
	root := (-b - sqrtD) / (2 * a)
	if !(root > tMin && root < tMax) {
		root = (-b + sqrtD) / (2 * a)
		if !(root > tMin && root < tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}
