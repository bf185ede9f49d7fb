package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/integrator"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

// ErrUnknownScene is returned by Create for names it cannot resolve
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering.
// Once built, a Scene is only read, so it can be shared by render workers.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HitList     // Spheres in the scene
	Materials      []material.Material   // Every material used by World, each listed once
	SamplingConfig core.SamplingConfig
	Background     integrator.Background // Sky gradient seen by escaping rays
}

func newScene(cameraConfig geometry.CameraConfig, sampling core.SamplingConfig, background integrator.Background) (*Scene, error) {
	s := &Scene{
		World:      geometry.NewHitList(),
		Background: background,
	}
	if err := s.configure(cameraConfig, sampling); err != nil {
		return nil, err
	}
	return s, nil
}

// configure resolves the camera against the image size and builds it.
// A non-zero camera Width resizes the image while keeping the camera's aspect ratio;
// otherwise the aspect ratio follows the image.
func (s *Scene) configure(cameraConfig geometry.CameraConfig, sampling core.SamplingConfig) error {
	if cameraConfig.Width > 0 && cameraConfig.Width != sampling.Width {
		aspectRatio := cameraConfig.AspectRatio
		if !(aspectRatio > 0) {
			aspectRatio = sampling.AspectRatio()
		}
		sampling.Width = cameraConfig.Width
		sampling.Height = heightFor(sampling.Width, aspectRatio)
	}
	if err := sampling.Validate(); err != nil {
		return err
	}

	cameraConfig.Width = sampling.Width
	cameraConfig.AspectRatio = sampling.AspectRatio()
	cameraConfig = cameraConfig.WithAutoFocus()

	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return err
	}

	s.Camera = camera
	s.CameraConfig = cameraConfig
	s.SamplingConfig = sampling
	return nil
}

// ApplySampling merges non-zero fields of override into the sampling config
// and rebuilds the camera. Setting only the width keeps the aspect ratio.
func (s *Scene) ApplySampling(override core.SamplingConfig) error {
	if override.Width > 0 && override.Height == 0 {
		override.Height = heightFor(override.Width, s.SamplingConfig.AspectRatio())
	}
	cameraConfig := s.CameraConfig
	cameraConfig.Width = 0
	return s.configure(cameraConfig, core.MergeSamplingConfig(s.SamplingConfig, override))
}

// AddSphere adds a sphere to the world and records its material
func (s *Scene) AddSphere(center core.Point3, radius float64, mat material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	s.World.Add(sphere)
	s.addMaterial(mat)
	return nil
}

func (s *Scene) addMaterial(mat material.Material) {
	for _, existing := range s.Materials {
		if existing == mat {
			return
		}
	}
	s.Materials = append(s.Materials, mat)
}

// GetCamera returns the camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld returns the shape every camera ray is traced against
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the image and sampling settings
func (s *Scene) GetSamplingConfig() core.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// NewIntegrator returns a path tracer using this scene's depth limit and sky
func (s *Scene) NewIntegrator() *integrator.PathTracingIntegrator {
	pt := integrator.NewPathTracingIntegrator(s.SamplingConfig)
	pt.Background = s.Background
	return pt
}

func heightFor(width int, aspectRatio float64) int {
	return max(1, int(math.Round(float64(width)/aspectRatio)))
}

func applyCameraOverrides(base geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	for _, override := range overrides {
		base = geometry.MergeCameraConfig(base, override)
	}
	return base
}

func mustSphere(s *Scene, center core.Point3, radius float64, mat material.Material) {
	if err := s.AddSphere(center, radius, mat); err != nil {
		panic(fmt.Sprintf("built-in scene: %v", err))
	}
}
