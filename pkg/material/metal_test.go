package material

import (
	"math"
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

func TestMetal_MirrorReflection(t *testing.T) {
	metal := NewMetal(core.NewColor(179, 153, 127), 0)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewPoint3(0, 0, 0), Normal: normal, Material: metal}

	incoming := []core.Vec3{
		core.NewVec3(1, -1, 0),
		core.NewVec3(0.2, -3, 0.7),
		core.NewVec3(-4, -0.1, 2),
	}

	for _, direction := range incoming {
		ray := core.NewRay(core.NewPoint3(0, 1, 0), direction)
		sampler := core.NewScriptedSampler(0.9)

		result, scattered := metal.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatalf("Mirror reflection of %v should scatter", direction)
		}

		unitIn := direction.UnitVector()
		out := result.Scattered.Direction
		if math.Abs(out.Dot(normal)-unitIn.Negate().Dot(normal)) > 1e-9 {
			t.Errorf("Reflection law violated: dot(out,n)=%f, dot(-in,n)=%f", out.Dot(normal), unitIn.Negate().Dot(normal))
		}
		tangentIn := unitIn.Subtract(normal.Multiply(unitIn.Dot(normal)))
		tangentOut := out.Subtract(normal.Multiply(out.Dot(normal)))
		if tangentIn.Subtract(tangentOut).Length() > 1e-9 {
			t.Errorf("Tangential component changed: %v -> %v", tangentIn, tangentOut)
		}
		if result.Attenuation != metal.Albedo {
			t.Errorf("Expected attenuation %v, got %v", metal.Albedo, result.Attenuation)
		}
		if sampler.Draws() != 0 {
			t.Errorf("Polished metal should not draw samples, drew %d", sampler.Draws())
		}
	}
}

func TestMetal_FuzzClampedAtScatter(t *testing.T) {
	metal := NewMetal(core.White, 5)
	if metal.Fuzz != 5 {
		t.Errorf("Fuzz should be stored unclamped, got %f", metal.Fuzz)
	}

	// Perturbation (1, 0, 0) after the unit sphere mapping of (1, 0.5, 0.5)
	sampler := core.NewScriptedSampler(0.99, 0.5, 0.5)
	hit := HitRecord{Point: core.NewPoint3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, -1, 0))

	result, scattered := metal.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Expected scatter above the surface")
	}
	expected := core.NewVec3(0.98, 1, 0)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected fuzz clamped to 1 giving %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.White, 1)
	// Grazing incidence plus a perturbation pointing into the surface
	sampler := core.NewScriptedSampler(0.5, 0.01, 0.5)
	hit := HitRecord{Point: core.NewPoint3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewPoint3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	if _, scattered := metal.Scatter(ray, hit, sampler); scattered {
		t.Error("Ray perturbed below the surface should be absorbed")
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	if !got.Equals(core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}
