package material

import (
	"math"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// One uniform draw picks reflection with probability equal to the Schlick
// reflectance, or always on total internal reflection.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction
	reflected := Reflect(direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dot := direction.Dot(hit.Normal); dot > 0 {
		// Leaving the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dot / direction.Length()
	} else {
		// Entering the medium
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dot / direction.Length()
	}

	var refracted core.Vec3
	var reflectance float64
	switch {
	case d.RefractiveIndex == 1.0:
		// Index-matched: nothing to bend and nothing to reflect
		refracted = direction.UnitVector()
		reflectance = 0
	default:
		var ok bool
		refracted, ok = Refract(direction, outwardNormal, niOverNt)
		if ok {
			reflectance = Schlick(cosine, d.RefractiveIndex)
		} else {
			reflectance = 1.0
		}
	}

	scattered := core.NewRay(hit.Point, refracted)
	if sampler.Get1D() < reflectance {
		scattered = core.NewRay(hit.Point, reflected)
	}

	return ScatterResult{
		Attenuation: core.White,
		Scattered:   scattered,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.UnitVector()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick approximates the Fresnel reflectance for a given cosine
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
