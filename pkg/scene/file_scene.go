package scene

import (
	"fmt"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/integrator"
	"github.com/WillDeJs/ray-tracing/pkg/loaders"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

// defaultFileVFov is used when a scene file leaves vfov out
const defaultFileVFov = 60.0

// NewFileScene loads a YAML scene file under dir and builds the scene it describes
func NewFileScene(dir, filename string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := loaders.LoadSceneFile(dir, filename)
	if err != nil {
		return nil, err
	}

	s, err := BuildScene(file, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// BuildScene turns a parsed scene file into a scene
func BuildScene(file *loaders.SceneFile, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := geometry.CameraConfig{
		Center:        toPoint(file.Camera.LookFrom),
		LookAt:        toPoint(file.Camera.LookAt),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          file.Camera.VFov,
		Aperture:      file.Camera.Aperture,
		FocusDistance: file.Camera.FocusDistance,
	}
	if file.Camera.Up != nil {
		cameraConfig.Up = core.NewVec3(file.Camera.Up[0], file.Camera.Up[1], file.Camera.Up[2])
	}
	if cameraConfig.VFov == 0 {
		cameraConfig.VFov = defaultFileVFov
	}
	cameraConfig = applyCameraOverrides(cameraConfig, cameraOverrides)

	sampling := core.MergeSamplingConfig(core.DefaultSamplingConfig(), core.SamplingConfig{
		Width:           file.Sampling.Width,
		Height:          file.Sampling.Height,
		SamplesPerPixel: file.Sampling.SamplesPerPixel,
		MaxDepth:        file.Sampling.MaxDepth,
	})

	background := integrator.DefaultBackground()
	if file.Background != nil {
		background = integrator.Background{
			Top:    toColor(file.Background.Top),
			Bottom: toColor(file.Background.Bottom),
		}
	}

	s, err := newScene(cameraConfig, sampling, background)
	if err != nil {
		return nil, err
	}

	materials := make(map[string]material.Material, len(file.Materials))
	for _, spec := range file.Materials {
		mat, err := buildMaterial(spec)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", spec.Name, err)
		}
		materials[spec.Name] = mat
	}

	for i, spec := range file.Spheres {
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: unknown material %q", i, loaders.ErrInvalidSceneFile, spec.Material)
		}
		if err := s.AddSphere(toPoint(spec.Center), spec.Radius, mat); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}

func buildMaterial(spec loaders.MaterialSpec) (material.Material, error) {
	switch spec.Type {
	case loaders.MaterialLambertian:
		return material.NewLambertian(toColor(*spec.Albedo)), nil
	case loaders.MaterialMetal:
		return material.NewMetal(toColor(*spec.Albedo), spec.Fuzz), nil
	case loaders.MaterialDielectric:
		return material.NewDielectric(spec.RefractiveIndex), nil
	}
	return nil, fmt.Errorf("%w: unknown material type %q", loaders.ErrInvalidSceneFile, spec.Type)
}

func toPoint(v loaders.Vec3Spec) core.Point3 {
	return core.NewPoint3(v[0], v[1], v[2])
}

func toColor(c loaders.ColorSpec) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}
