package material

import (
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

func TestLambertian_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewColor(200, 100, 50)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normals := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		core.NewVec3(-1, 0, 0),
	}

	for _, normal := range normals {
		hit := HitRecord{T: 1, Point: core.NewPoint3(1, 2, 3), Normal: normal, Material: lambertian}
		ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))

		for i := 0; i < 100; i++ {
			result, scattered := lambertian.Scatter(ray, hit, sampler)
			if !scattered {
				t.Fatal("Lambertian should always scatter")
			}
			if result.Attenuation != albedo {
				t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
			}
			if result.Scattered.Origin != hit.Point {
				t.Fatalf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
			}
		}
	}
}

func TestLambertian_ScatterStaysInUnitSphereAroundNormal(t *testing.T) {
	lambertian := NewLambertian(core.Gray)
	sampler := core.NewSeededSampler(7)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewPoint3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, -1, 0))

	for i := 0; i < 500; i++ {
		result, _ := lambertian.Scatter(ray, hit, sampler)
		offset := result.Scattered.Direction.Subtract(normal)
		if offset.LengthSquared() >= 1 {
			t.Fatalf("Scatter target %v is outside the unit sphere around the normal", result.Scattered.Direction)
		}
	}
}

func TestLambertian_ScriptedScatter(t *testing.T) {
	lambertian := NewLambertian(core.White)
	// 0.5 maps to the sphere centre, so the ray leaves along the normal
	sampler := core.NewScriptedSampler(0.5)
	hit := HitRecord{Point: core.NewPoint3(0, 0, 1), Normal: core.NewVec3(0, 0, 1)}

	result, _ := lambertian.Scatter(core.NewRay(core.NewPoint3(0, 0, 4), core.NewVec3(0, 0, -1)), hit, sampler)
	if !result.Scattered.Direction.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected direction (0,0,1), got %v", result.Scattered.Direction)
	}
	if sampler.Draws() != 3 {
		t.Errorf("Expected one 3D draw, got %d values", sampler.Draws())
	}
}
