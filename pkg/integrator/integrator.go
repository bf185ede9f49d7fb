package integrator

import (
	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color
}

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Color // Color straight up
	Bottom core.Color // Color straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{Top: core.SkyBlue, Bottom: core.White}
}

// Color returns the gradient color for a ray direction.
// t = 0.5*(unit(d).y + 1) blends Bottom (t=0) into Top (t=1).
func (b Background) Color(direction core.Vec3) core.Color {
	t := 0.5 * (direction.UnitVector().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
