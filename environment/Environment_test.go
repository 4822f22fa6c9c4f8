package environment

import (
	"errors"
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestOptionsSeed(t *testing.T) {
	tests := []struct {
		opts    Options
		want    uint64
		ok, err bool
	}{
		{nil, 0, false, false},
		{Options{}, 0, false, false},
		{Options{"seed": nil}, 0, false, false},
		{Options{"seed": 3}, 3, true, false},
		{Options{"seed": uint64(7)}, 7, true, false},
		{Options{"seed": 12.0}, 12, true, false},
		{Options{"seed": -1}, 0, false, true},
		{Options{"seed": 1.5}, 0, false, true},
		{Options{"seed": "1"}, 0, false, true},
	}

	for _, test := range tests {
		seed, ok, err := test.opts.Seed()
		if (err != nil) != test.err {
			t.Errorf("%v: unexpected error state %v", test.opts, err)
			continue
		}
		if seed != test.want || ok != test.ok {
			t.Errorf("%v: expected (%v, %v), got (%v, %v)", test.opts,
				test.want, test.ok, seed, ok)
		}
	}
}

func TestRenderModeValid(t *testing.T) {
	for _, mode := range []RenderMode{NoRender, Human, RGBArray} {
		if !mode.Valid() {
			t.Errorf("expected %q to be valid", mode)
		}
	}
	if RenderMode("ansi").Valid() {
		t.Error("expected ansi to be invalid")
	}
}

func TestEnvironmentError(t *testing.T) {
	err := fmt.Errorf("run: %w",
		&EnvironmentError{Op: "step", Err: ErrStateUndefined})

	if !IsStateUndefined(err) {
		t.Errorf("expected %v to report an undefined state", err)
	}
	if IsInvalidAction(err) {
		t.Errorf("expected %v not to report an invalid action", err)
	}

	var envErr *EnvironmentError
	if !errors.As(err, &envErr) || envErr.Op != "step" {
		t.Errorf("expected to unwrap an EnvironmentError from %v", err)
	}
}

func TestUniformStarter(t *testing.T) {
	bounds := []r1.Interval{{Min: -0.05, Max: 0.05}, {Min: 1, Max: 2}}
	starter, err := NewUniformStarter(bounds, 1)
	if err != nil {
		t.Fatal(err)
	}

	first := starter.Start()
	for i := 0; i < 100; i++ {
		state := starter.Start()
		for j, b := range bounds {
			if v := state.AtVec(j); v < b.Min || v > b.Max {
				t.Fatalf("feature %v = %v outside of %v", j, v, b)
			}
		}
	}

	starter.Seed(1)
	if again := starter.Start(); again.AtVec(0) != first.AtVec(0) {
		t.Errorf("expected reseeding to repeat the first state: %v != %v",
			again.AtVec(0), first.AtVec(0))
	}

	if err := starter.SetBounds(bounds[:1]); err == nil {
		t.Error("expected error when changing the number of intervals")
	}
	if err := starter.SetBounds([]r1.Interval{{Min: 3, Max: 3},
		{Min: 4, Max: 4}}); err != nil {
		t.Fatal(err)
	}
	if state := starter.Start(); state.AtVec(0) != 3 || state.AtVec(1) != 4 {
		t.Errorf("expected state (3, 4), got %v", state.RawVector().Data)
	}

	if _, err := NewUniformStarter([]r1.Interval{{Min: 1, Max: 0}}, 0); err == nil {
		t.Error("expected error for an empty interval")
	}
}

func TestIntervalLimit(t *testing.T) {
	limit, err := NewIntervalLimit([]r1.Interval{{Min: -1, Max: 1},
		{Min: 0, Max: 2}}, []int{0, 2})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		state []float64
		want  bool
	}{
		{[]float64{0, 100, 1}, false},
		{[]float64{1, -100, 2}, false},
		{[]float64{-1, 0, 0}, false},
		{[]float64{1.01, 0, 1}, true},
		{[]float64{0, 0, -0.1}, true},
		{[]float64{-2, 0, 3}, true},
	}

	for _, test := range tests {
		if got := limit.Exceeded(mat.NewVecDense(3, test.state)); got != test.want {
			t.Errorf("Exceeded(%v): expected %v, got %v", test.state,
				test.want, got)
		}
	}

	if _, err := NewIntervalLimit([]r1.Interval{{Min: 0, Max: 1}},
		[]int{0, 1}); err == nil {
		t.Error("expected error for mismatched limits and indices")
	}
	if _, err := NewIntervalLimit([]r1.Interval{{Min: 0, Max: 1}},
		[]int{-1}); err == nil {
		t.Error("expected error for a negative index")
	}
}
