package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce rays
var ErrInvalidCamera = errors.New("invalid camera config")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Point3 // Camera position (look from)
	LookAt        core.Point3 // Point the camera is looking at
	Up            core.Vec3   // Up direction
	Width         int         // Image width in pixels, 0 leaves the sampling width alone
	AspectRatio   float64     // Width / height
	VFov          float64     // Vertical field of view in degrees
	Aperture      float64     // Lens diameter, 0 for a pinhole camera
	FocusDistance float64     // Distance to the focal plane, 0 focuses on LookAt
}

// WithAutoFocus returns the config with a zero FocusDistance replaced by
// the distance from Center to LookAt
func (c CameraConfig) WithAutoFocus() CameraConfig {
	if c.FocusDistance == 0 {
		c.FocusDistance = c.Center.DistanceTo(c.LookAt)
	}
	return c
}

// Validate checks the configuration without building a camera
func (c CameraConfig) Validate() error {
	switch {
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidCamera, c.AspectRatio)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical fov must be in (0, 180), got %g", ErrInvalidCamera, c.VFov)
	case !(c.Aperture >= 0):
		return fmt.Errorf("%w: aperture must not be negative, got %g", ErrInvalidCamera, c.Aperture)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance must be positive, got %g", ErrInvalidCamera, c.FocusDistance)
	case c.Center == c.LookAt:
		return fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidCamera)
	}
	return nil
}

// Camera generates rays for rendering with a thin lens model.
// A Camera is immutable and safe for concurrent use.
type Camera struct {
	config          CameraConfig
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	w, err := config.Center.Subtract(config.LookAt).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCamera, err)
	}
	u, err := config.Up.Cross(w).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction: %v", ErrInvalidCamera, err)
	}
	v := w.Cross(u)

	halfHeight := math.Tan(config.VFov * math.Pi / 360)
	halfWidth := config.AspectRatio * halfHeight
	focus := config.FocusDistance

	lowerLeftCorner := config.Center.
		Add(u.Multiply(-halfWidth * focus)).
		Add(v.Multiply(-halfHeight * focus)).
		Add(w.Multiply(-focus))

	return &Camera{
		config:          config,
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focus),
		vertical:        v.Multiply(2 * halfHeight * focus),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray through image plane coordinates (s, t), both in
// [0, 1] with t measured from the bottom. The origin is jittered over the
// lens disk; a pinhole camera draws no lens sample.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin))
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// MergeCameraConfig applies every non-zero field of override to base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Center != (core.Point3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Point3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}
