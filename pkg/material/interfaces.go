package material

import (
	"github.com/WillDeJs/ray-tracing/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the attenuation and the outgoing ray, or false if the
	// incoming ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Color // Color attenuation
	Scattered   core.Ray   // The scattered ray
}

// HitRecord contains information about a ray-object intersection.
// It is valid only for the query that produced it.
type HitRecord struct {
	T        float64     // Parameter t along the ray
	Point    core.Point3 // Point of intersection
	Normal   core.Vec3   // Outward unit surface normal
	Material Material    // Material of the hit object
}
