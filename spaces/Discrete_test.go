package spaces

import (
	"math"
	"testing"
)

func TestDiscreteContains(t *testing.T) {
	d, err := NewDiscreteWithStart(3, -5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   interface{}
		want bool
	}{
		{-5, true},
		{-3, true},
		{-6, false},
		{-2, false},
		{int8(-4), true},
		{int64(-4), true},
		{uint(0), false},
		{uint64(math.MaxUint64), false},
		{-4.0, false},
		{"-4", false},
	}

	for _, test := range tests {
		if got := d.Contains(test.in); got != test.want {
			t.Errorf("Contains(%#v): expected %v, got %v", test.in, test.want,
				got)
		}
	}
}

func TestDiscreteSampleCoversRange(t *testing.T) {
	d, err := NewDiscreteWithStart(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	d.Seed(7)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[d.Sample()] = true
	}

	if len(seen) != 4 {
		t.Errorf("expected 4 distinct samples, got %v", seen)
	}
	for v := range seen {
		if v < 2 || v > 5 {
			t.Errorf("sample %v outside of [2, 5]", v)
		}
	}
}

func TestDiscreteString(t *testing.T) {
	d, _ := NewDiscrete(2)
	if got := d.String(); got != "Discrete(2)" {
		t.Errorf("expected Discrete(2), got %v", got)
	}

	d, _ = NewDiscreteWithStart(2, -1)
	if got := d.String(); got != "Discrete(2, start=-1)" {
		t.Errorf("expected Discrete(2, start=-1), got %v", got)
	}
}
