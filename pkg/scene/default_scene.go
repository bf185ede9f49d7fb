package scene

import (
	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/integrator"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

// defaultCameraConfig looks across the three large spheres from beside the metal one
func defaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewPoint3(6, 1, 2),
		LookAt:        core.NewPoint3(4, 1, 1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          60,
		Aperture:      0.01,
		FocusDistance: 0, // Auto-calculate focus distance
	}
}

// NewDefaultScene creates a scene with a glass, a diffuse and a metal sphere on a ground sphere
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := applyCameraOverrides(defaultCameraConfig(), cameraOverrides)

	s, err := newScene(cameraConfig, core.DefaultSamplingConfig(), integrator.DefaultBackground())
	if err != nil {
		return nil, err
	}

	addGround(s)
	addFeatureSpheres(s)
	return s, nil
}

func addGround(s *Scene) {
	mustSphere(s, core.NewPoint3(0, -1000, 0), 1000, material.NewLambertian(core.Gray))
}

func addFeatureSpheres(s *Scene) {
	mustSphere(s, core.NewPoint3(0, 1, 0), 1, material.NewDielectric(2.0))
	mustSphere(s, core.NewPoint3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(102, 51, 26)))
	mustSphere(s, core.NewPoint3(4, 1, 0), 1, material.NewMetal(core.NewColor(179, 153, 127), 0))
}
