package core

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestVec3_DotProduct(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if got := v.Dot(v); got != 14 {
		t.Errorf("Expected dot product 14, got %f", got)
	}
}

func TestVec3_CrossProduct(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"general", NewVec3(1, 2, 3), NewVec3(3, 4, 5), NewVec3(-2, 4, -2)},
		{"parallel is zero", NewVec3(1, 2, 3), NewVec3(1, 2, 3), NewVec3(0, 0, 0)},
		{"x cross y is z", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross x is -z", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_CrossIsOrthogonalAndAntisymmetric(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		b := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		c := a.Cross(b)

		if math.Abs(c.Dot(a)) > 1e-9 || math.Abs(c.Dot(b)) > 1e-9 {
			t.Fatalf("cross(%v, %v) = %v is not orthogonal to its operands", a, b, c)
		}
		if c.Add(b.Cross(a)).Length() > 1e-12 {
			t.Fatalf("cross is not antisymmetric for %v, %v", a, b)
		}
	}
}

func TestVec3_Scaling(t *testing.T) {
	if got := NewVec3(1, 2, 3).Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Expected (2,4,6), got %v", got)
	}
	if got := Scale(2, NewVec3(1, 2, 3)); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Expected scalar-left scale (2,4,6), got %v", got)
	}

	got, err := NewVec3(2, 4, 6).Divide(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equals(NewVec3(1, 2, 3)) {
		t.Errorf("Expected (1,2,3), got %v", got)
	}
}

func TestVec3_DivideByZero(t *testing.T) {
	_, err := NewVec3(1, 2, 3).Divide(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero, got %v", err)
	}
}

func TestVec3_Normalize(t *testing.T) {
	unit, err := NewVec3(5, 5, 5).Normalize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := 1.0 / math.Sqrt(3)
	if math.Abs(unit.X-expected) > 1e-12 || math.Abs(unit.Y-expected) > 1e-12 || math.Abs(unit.Z-expected) > 1e-12 {
		t.Errorf("Expected all components %f, got %v", expected, unit)
	}

	random := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		v := NewVec3(random.NormFloat64()*100, random.NormFloat64()*100, random.NormFloat64()*100)
		if v.Length() == 0 {
			continue
		}
		if length := v.UnitVector().Length(); math.Abs(length-1) > 1e-5 {
			t.Fatalf("unit vector of %v has length %f", v, length)
		}
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	_, err := Vec3{}.Normalize()

	var degenerate *DegenerateVectorError
	if !errors.As(err, &degenerate) {
		t.Fatalf("Expected DegenerateVectorError, got %v", err)
	}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("DegenerateVectorError should unwrap to ErrDivisionByZero")
	}
}

func TestVec3_UnitVectorPanicsOnZero(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*DegenerateVectorError); !ok {
			t.Errorf("Expected panic with *DegenerateVectorError, got %v", r)
		}
	}()
	Vec3{}.UnitVector()
}

func TestVec3_LengthAndNegate(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if v.Length() != 5 || v.LengthSquared() != 25 {
		t.Errorf("Expected length 5 and squared length 25, got %f and %f", v.Length(), v.LengthSquared())
	}
	if got := v.Negate(); !got.Equals(NewVec3(-3, -4, 0)) {
		t.Errorf("Expected (-3,-4,0), got %v", got)
	}
}

func TestPoint3_Arithmetic(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	q := NewPoint3(4, 6, 3)

	if d := q.Subtract(p); !d.Equals(NewVec3(3, 4, 0)) {
		t.Errorf("Expected displacement (3,4,0), got %v", d)
	}
	if d := NewVec3FromPoints(p, q); !d.Equals(NewVec3(3, 4, 0)) {
		t.Errorf("Expected displacement (3,4,0), got %v", d)
	}
	if moved := p.Add(NewVec3(3, 4, 0)); moved != q {
		t.Errorf("Expected %v, got %v", q, moved)
	}
	if p.DistanceTo(q) != 5 {
		t.Errorf("Expected distance 5, got %f", p.DistanceTo(q))
	}
	if p.Negate() != NewPoint3(-1, -2, -3) {
		t.Errorf("Expected (-1,-2,-3), got %v", p.Negate())
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint3(1, 1, 1), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewPoint3(1, 1, -2) {
		t.Errorf("Expected (1,1,-2), got %v", got)
	}
	if got := ray.At(0); got != ray.Origin {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
}
