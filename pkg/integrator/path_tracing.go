package integrator

import (
	"math"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
)

// TMin is the smallest accepted hit distance; it keeps scattered rays from
// hitting the surface they start on
const TMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth   int        // Bounces allowed before a path returns black
	Background Background // Sky seen by escaping rays
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   config.MaxDepth,
		Background: DefaultBackground(),
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, world, sampler, 0)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Color {
	hit, isHit := world.Hit(ray, TMin, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray.Direction)
	}

	// Paths that bounce too often gather no more light
	if depth >= pt.MaxDepth {
		return core.Black
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Black
	}

	return scatter.Attenuation.Diffuse(pt.rayColor(scatter.Scattered, world, sampler, depth+1))
}
