package geometry

import (
	"math"
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

func TestHitList_NearestHit(t *testing.T) {
	near := newTestSphere(t, core.NewPoint3(0, 0, 0), 1.0)
	far := newTestSphere(t, core.NewPoint3(0, 0, -3), 1.5)
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))

	orders := map[string]*HitList{
		"near first": NewHitList(near, far),
		"far first":  NewHitList(far, near),
	}

	for name, list := range orders {
		t.Run(name, func(t *testing.T) {
			hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-4) > 1e-9 {
				t.Errorf("Expected nearest t=4, got t=%f", hit.T)
			}
			if hit.Material != near.Material {
				t.Error("Expected the nearer sphere's material")
			}
		})
	}
}

func TestHitList_Overlapping(t *testing.T) {
	// The small sphere pokes out of the big one toward the ray origin
	big := newTestSphere(t, core.NewPoint3(0, 0, 0), 2.0)
	small := newTestSphere(t, core.NewPoint3(0, 0, 1), 1.5)
	list := NewHitList(small, big)
	ray := core.NewRay(core.NewPoint3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit, _ := list.Hit(ray, 0.001, math.Inf(1))
	if math.Abs(hit.T-7.5) > 1e-9 {
		t.Errorf("Expected t=7.5, got t=%f", hit.T)
	}
}

func TestHitList_EmptyAndMiss(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))

	empty := NewHitList()
	if _, isHit := empty.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty list should never be hit")
	}

	list := NewHitList()
	list.Add(newTestSphere(t, core.NewPoint3(10, 0, 0), 1))
	if list.Len() != 1 {
		t.Errorf("Expected 1 shape, got %d", list.Len())
	}
	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss")
	}
}
