package spaces

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gorgonia.org/tensor"
)

func mustSpaces(t *testing.T) []Space {
	t.Helper()

	discrete, err := NewDiscrete(3)
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := NewDiscreteWithStart(3, -5)
	if err != nil {
		t.Fatal(err)
	}
	box, err := NewBox(-1, 1, []int{2, 3}, tensor.Float64)
	if err != nil {
		t.Fatal(err)
	}
	unbounded, err := NewBoxFromBounds(
		[]float64{math.Inf(-1), 0, math.Inf(-1)},
		[]float64{math.Inf(1), math.Inf(1), 0},
		nil,
		tensor.Float32,
	)
	if err != nil {
		t.Fatal(err)
	}
	intBox, err := NewBox(-2.5, 3.5, []int{4}, tensor.Int64)
	if err != nil {
		t.Fatal(err)
	}
	binary, err := NewMultiBinary(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	multi, err := NewMultiDiscrete(2, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	dict, err := NewDict(map[string]Space{
		"position": box,
		"action":   discrete,
	})
	if err != nil {
		t.Fatal(err)
	}

	return []Space{discrete, shifted, box, unbounded, intBox, binary, multi,
		dict}
}

func TestSampleContained(t *testing.T) {
	for _, space := range mustSpaces(t) {
		space.Seed(1)
		for i := 0; i < 500; i++ {
			sample := space.SampleValue()
			if !space.Contains(sample) {
				t.Fatalf("%v: sample %v not contained in space", space,
					sample)
			}
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	for _, space := range mustSpaces(t) {
		space.Seed(42)
		first := make([]string, 10)
		for i := range first {
			first[i] = sprint(space.SampleValue())
		}

		space.Seed(42)
		for i := range first {
			if got := sprint(space.SampleValue()); got != first[i] {
				t.Errorf("%v: sample %v after reseed: expected %v, got %v",
					space, i, first[i], got)
			}
		}
	}
}

func TestEqualsReflexiveSymmetric(t *testing.T) {
	first := mustSpaces(t)
	second := mustSpaces(t)

	for i := range first {
		if !first[i].Equals(first[i]) {
			t.Errorf("%v: space not equal to itself", first[i])
		}
		for j := range second {
			want := i == j
			if got := first[i].Equals(second[j]); got != want {
				t.Errorf("(%v).Equals(%v): expected %v, got %v", first[i],
					second[j], want, got)
			}
			if first[i].Equals(second[j]) != second[j].Equals(first[i]) {
				t.Errorf("equality of %v and %v not symmetric", first[i],
					second[j])
			}
		}
	}
}

func TestContainsRejectsForeignValues(t *testing.T) {
	var nilDense *tensor.Dense
	values := []interface{}{nil, nilDense, "a", 1.5, []int{0}, struct{}{}}

	for _, space := range mustSpaces(t) {
		for _, v := range values {
			if space.Contains(v) {
				t.Errorf("%v: should not contain %#v", space, v)
			}
		}
	}
}

func TestInvalidSpaces(t *testing.T) {
	tests := []struct {
		name string
		make func() error
	}{
		{"discrete zero", func() error { _, err := NewDiscrete(0); return err }},
		{"discrete negative", func() error {
			_, err := NewDiscreteWithStart(-1, 3)
			return err
		}},
		{"box zero dimension", func() error {
			_, err := NewBox(0, 1, []int{2, 0}, tensor.Float64)
			return err
		}},
		{"box low above high", func() error {
			_, err := NewBox(1, 0, []int{2}, tensor.Float64)
			return err
		}},
		{"box NaN", func() error {
			_, err := NewBox(math.NaN(), 0, []int{2}, tensor.Float64)
			return err
		}},
		{"box non-numeric", func() error {
			_, err := NewBox(0, 1, []int{2}, tensor.String)
			return err
		}},
		{"box bounds length", func() error {
			_, err := NewBoxFromBounds([]float64{0}, []float64{1, 2}, nil,
				tensor.Float64)
			return err
		}},
		{"box empty integer range", func() error {
			_, err := NewBox(0.2, 0.8, []int{1}, tensor.Int)
			return err
		}},
		{"box uint8 below range", func() error {
			_, err := NewBox(-1, 5, []int{64}, tensor.Uint8)
			return err
		}},
		{"box int8 above range", func() error {
			_, err := NewBox(0, 1000, []int{64}, tensor.Int8)
			return err
		}},
		{"box uint8 no representable values", func() error {
			_, err := NewBox(math.Inf(-1), math.Inf(-1), []int{1},
				tensor.Uint8)
			return err
		}},
		{"multibinary negative", func() error {
			_, err := NewMultiBinary(2, -1)
			return err
		}},
		{"multibinary empty", func() error {
			_, err := NewMultiBinary()
			return err
		}},
		{"multidiscrete zero", func() error {
			_, err := NewMultiDiscrete(3, 0)
			return err
		}},
		{"dict nil", func() error {
			_, err := NewDict(map[string]Space{"a": nil})
			return err
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.make()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidSpace) {
				t.Errorf("expected error to wrap ErrInvalidSpace, got %v", err)
			}
		})
	}
}

func sprint(v interface{}) string {
	return fmt.Sprint(v)
}
