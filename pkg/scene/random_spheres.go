package scene

import (
	"math/rand"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/integrator"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

const (
	gridHalfExtent    = 12   // Grid cells run from -12 to 11 on both axes
	smallSphereRadius = 0.2
	minClearance      = 0.9 // Small spheres keep this far from the metal feature sphere
)

// NewRandomSpheresScene scatters small random spheres on a 24x24 grid around the
// default scene's three large spheres. The same seed always builds the same world.
func NewRandomSpheresScene(seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := applyCameraOverrides(defaultCameraConfig(), cameraOverrides)

	s, err := newScene(cameraConfig, core.DefaultSamplingConfig(), integrator.DefaultBackground())
	if err != nil {
		return nil, err
	}

	random := rand.New(rand.NewSource(seed))
	addGround(s)

	// Small glass spheres share one material
	glass := material.NewDielectric(2.0)
	keepClear := core.NewPoint3(4, smallSphereRadius, 0)

	for a := -gridHalfExtent; a < gridHalfExtent; a++ {
		for b := -gridHalfExtent; b < gridHalfExtent; b++ {
			chooseMaterial := random.Float64()
			center := core.NewPoint3(
				float64(a)+0.9*random.Float64(),
				smallSphereRadius,
				float64(b)+0.9*random.Float64(),
			)
			if center.DistanceTo(keepClear) <= minClearance {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.7:
				mat = material.NewLambertian(randomColor(random))
			case chooseMaterial < 0.8:
				mat = material.NewMetal(randomColor(random), random.Float64()*0.5)
			default:
				mat = glass
			}
			mustSphere(s, center, smallSphereRadius, mat)
		}
	}

	addFeatureSpheres(s)
	return s, nil
}

func randomColor(random *rand.Rand) core.Color {
	return core.NewColor(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
}
