package tensorutils

import (
	"math"
	"testing"

	"gorgonia.org/tensor"
)

func TestNewFloat64s(t *testing.T) {
	dtypes := []tensor.Dtype{tensor.Float32, tensor.Float64, tensor.Int8,
		tensor.Int32, tensor.Int64, tensor.Uint8}

	for _, dt := range dtypes {
		values := []float64{0, 1, 2, 3, 4, 5}
		x, err := New(dt, []int{2, 3}, values)
		if err != nil {
			t.Fatalf("new(%v): %v", dt, err)
		}
		if x.Dtype() != dt {
			t.Errorf("new: expected dtype %v, got %v", dt, x.Dtype())
		}

		got, ok := Float64s(x)
		if !ok {
			t.Fatalf("float64s(%v): could not read elements", dt)
		}
		for i := range values {
			if got[i] != values[i] {
				t.Errorf("float64s(%v): expected %v at %v, got %v", dt,
					values[i], i, got[i])
			}
		}
	}
}

func TestNewShapeMismatch(t *testing.T) {
	if _, err := New(tensor.Float32, []int{4}, []float64{1, 2}); err == nil {
		t.Error("new: expected an error for mismatched shape and values")
	}
	if _, err := New(tensor.Bool, []int{1}, []float64{1}); err == nil {
		t.Error("new: expected an error for a non-numeric dtype")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(tensor.Float32, []int{2}, []float64{1, 2})
	b, _ := New(tensor.Float32, []int{2}, []float64{1, 2})
	c, _ := New(tensor.Float64, []int{2}, []float64{1, 2})
	d, _ := New(tensor.Float32, []int{2}, []float64{1, 3})

	if !Equal(a, b) {
		t.Error("equal: expected identical tensors to be equal")
	}
	if Equal(a, c) {
		t.Error("equal: tensors with different dtypes should not be equal")
	}
	if Equal(a, d) {
		t.Error("equal: tensors with different elements should not be equal")
	}
}

func TestClamp(t *testing.T) {
	x, _ := New(tensor.Float64, []int{3}, []float64{-2, 0.5, 7})
	clamped, err := Clamp(x, []float64{-1, -1, -1}, []float64{1, 1, math.Inf(1)})
	if err != nil {
		t.Fatal(err)
	}

	got, _ := Float64s(clamped)
	want := []float64{-1, 0.5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("clamp: expected %v at %v, got %v", want[i], i, got[i])
		}
	}
}

func TestCast(t *testing.T) {
	if v := Cast(tensor.Int32, 2.7); v != 2 {
		t.Errorf("cast: expected 2, got %v", v)
	}
	if v := Cast(tensor.Float32, math.Inf(-1)); !math.IsInf(v, -1) {
		t.Errorf("cast: expected -Inf to stay infinite, got %v", v)
	}
}

func TestNewScalar(t *testing.T) {
	x, err := New(tensor.Int32, []int{}, []float64{7})
	if err != nil {
		t.Fatal(err)
	}
	if !x.IsScalar() || x.Dtype() != tensor.Int32 {
		t.Fatalf("expected int32 scalar, got %v (%v)", x, x.Dtype())
	}
	if data, ok := Float64s(x); !ok || len(data) != 1 || data[0] != 7 {
		t.Errorf("expected [7], got %v", data)
	}
}

func TestIntegerRange(t *testing.T) {
	tests := []struct {
		dt       tensor.Dtype
		min, max float64
	}{
		{tensor.Int8, -128, 127},
		{tensor.Uint8, 0, 255},
		{tensor.Int16, -32768, 32767},
		{tensor.Uint32, 0, 4294967295},
	}

	for _, test := range tests {
		r, ok := IntegerRange(test.dt)
		if !ok || r.Min != test.min || r.Max != test.max {
			t.Errorf("integerRange(%v): expected [%v, %v], got %v", test.dt,
				test.min, test.max, r)
		}
	}

	r, ok := IntegerRange(tensor.Int64)
	if !ok || int64(r.Max) < 0 || r.Min != math.MinInt64 {
		t.Errorf("integerRange(int64): range %v not representable", r)
	}
	if _, ok := IntegerRange(tensor.Float32); ok {
		t.Error("integerRange(float32): expected no range")
	}
}
