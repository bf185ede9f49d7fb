package integrator

import (
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

func newWorld(t *testing.T, mat material.Material) *geometry.HitList {
	t.Helper()
	sphere, err := geometry.NewSphere(core.NewPoint3(0, 0, 0), 1, mat)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return geometry.NewHitList(sphere)
}

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(core.Ray, material.HitRecord, core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// countingMaterial bounces every ray straight back and counts hits
type countingMaterial struct {
	hits int
}

func (c *countingMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, _ core.Sampler) (material.ScatterResult, bool) {
	c.hits++
	return material.ScatterResult{
		Attenuation: core.White,
		Scattered:   core.NewRay(hit.Point, rayIn.Direction.Negate()),
	}, true
}

func TestBackground_Gradient(t *testing.T) {
	background := DefaultBackground()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.SkyBlue},
		{"straight down is white", core.NewVec3(0, -1, 0), core.White},
		// t = 0.5: white halves to 127 and sky blue to (63, 90, 127)
		{"horizon", core.NewVec3(0, 0, -1), core.NewColor(190, 217, 254)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := background.Color(tt.direction); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracing_MissReturnsSky(t *testing.T) {
	integrator := NewPathTracingIntegrator(core.DefaultSamplingConfig())
	world := newWorld(t, material.NewLambertian(core.Red))
	sampler := core.NewScriptedSampler(0.5)

	direction := core.NewVec3(3, 1, -2)
	ray := core.NewRay(core.NewPoint3(0, 0, 4), direction)
	expected := integrator.Background.Color(direction)

	if got := integrator.RayColor(ray, world, sampler); got != expected {
		t.Errorf("Expected sky %v, got %v", expected, got)
	}
	if sampler.Draws() != 0 {
		t.Errorf("A miss should not draw samples, drew %d", sampler.Draws())
	}
}

func TestPathTracing_ScriptedLambertianBounce(t *testing.T) {
	integrator := NewPathTracingIntegrator(core.DefaultSamplingConfig())
	world := newWorld(t, material.NewLambertian(core.NewColor(200, 100, 50)))
	// Every unit sphere sample maps to the origin, so the bounce leaves
	// along the normal (0,0,1) and escapes to the horizon sky
	sampler := core.NewScriptedSampler(0.5)

	ray := core.NewRay(core.NewPoint3(0, 0, 4), core.NewVec3(0, 0, -4))
	got := integrator.RayColor(ray, world, sampler)

	sky := core.NewColor(190, 217, 254)
	expected := core.NewColor(200, 100, 50).Diffuse(sky)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if expected != core.NewColor(149, 85, 49) {
		t.Errorf("Diffuse of the horizon sky drifted: %v", expected)
	}
}

func TestPathTracing_AbsorbedIsBlack(t *testing.T) {
	integrator := NewPathTracingIntegrator(core.DefaultSamplingConfig())
	world := newWorld(t, absorber{})

	ray := core.NewRay(core.NewPoint3(0, 0, 4), core.NewVec3(0, 0, -1))
	if got := integrator.RayColor(ray, world, core.NewScriptedSampler()); got != core.Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestPathTracing_DepthCap(t *testing.T) {
	tests := []struct {
		name     string
		maxDepth int
	}{
		{"no bounces", 0},
		{"a few bounces", 3},
		{"reference cap", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mirror := &countingMaterial{}
			// Two facing spheres trap the ray forever
			left, _ := geometry.NewSphere(core.NewPoint3(-2, 0, 0), 1, mirror)
			right, _ := geometry.NewSphere(core.NewPoint3(2, 0, 0), 1, mirror)
			world := geometry.NewHitList(left, right)

			integrator := &PathTracingIntegrator{MaxDepth: tt.maxDepth, Background: DefaultBackground()}
			ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(1, 0, 0))

			if got := integrator.RayColor(ray, world, core.NewScriptedSampler()); got != core.Black {
				t.Errorf("Trapped path should end black, got %v", got)
			}
			if mirror.hits != tt.maxDepth {
				t.Errorf("Expected %d scatters, got %d", tt.maxDepth, mirror.hits)
			}
		})
	}
}
