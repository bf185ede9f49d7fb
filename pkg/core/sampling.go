package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere returns a point strictly inside the unit sphere by
// rejection sampling the [-1,1]³ cube
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk returns a point strictly inside the unit disk in the
// z=0 plane, by rejection sampling the [-1,1]² square
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// ScriptedSampler replays a fixed sequence of values, wrapping around at the
// end. It makes ray generation and scattering fully predictable in tests.
//
// RandomInUnitSphere and RandomInUnitDisk retry until a point lands inside the
// unit ball, so the script must contain such a point or they never return.
// A constant script serves both only for values strictly between about 0.211
// and 0.789 (0.5 maps to the origin).
type ScriptedSampler struct {
	values []float64
	next   int
	drawn  int
}

// NewScriptedSampler creates a sampler that replays values in order
func NewScriptedSampler(values ...float64) *ScriptedSampler {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &ScriptedSampler{values: values}
}

// Get1D returns the next scripted value
func (s *ScriptedSampler) Get1D() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.drawn++
	return v
}

// Get3D returns the next three scripted values
func (s *ScriptedSampler) Get3D() Vec3 {
	x := s.Get1D()
	y := s.Get1D()
	z := s.Get1D()
	return NewVec3(x, y, z)
}

// Draws returns how many values have been consumed so far
func (s *ScriptedSampler) Draws() int {
	return s.drawn
}
