package wrappers

import (
	"math"
	"testing"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
)

func TestClipAction(t *testing.T) {
	env := newBoxEnv(t)
	w, err := NewClipAction[*tensor.Dense](env)
	if err != nil {
		t.Fatal(err)
	}

	box, ok := w.ActionSpace().(*spaces.Box)
	if !ok {
		t.Fatalf("expected Box action space, got %v", w.ActionSpace())
	}
	if box.IsBounded() || box.BoundedBelow()[0] || box.BoundedAbove()[1] {
		t.Errorf("expected unbounded action space, got %v", box)
	}
	if !w.Env().ActionSpace().Equals(env.ActionSpace()) {
		t.Error("wrapped action space should be unchanged")
	}

	if _, err := w.Reset(nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		action, want []float64
	}{
		{[]float64{0.5, -0.5}, []float64{0.5, -0.5}},
		{[]float64{2, -3}, []float64{1, -1}},
		{[]float64{math.Inf(-1), math.Inf(1)}, []float64{-1, 1}},
	}

	for _, test := range tests {
		step, err := w.Step(vec(test.action...))
		if err != nil {
			t.Fatal(err)
		}

		got := step.Observation.Data().([]float64)
		for i := range test.want {
			if got[i] != test.want[i] {
				t.Errorf("Step(%v): expected %v, got %v", test.action,
					test.want, got)
				break
			}
		}
	}

	if _, err := w.Step(vec(1, 2, 3)); !environment.IsInvalidAction(err) {
		t.Errorf("expected invalid action for wrong shape, got %v", err)
	}
	if _, err := w.Step(nil); !environment.IsInvalidAction(err) {
		t.Errorf("expected invalid action for nil action, got %v", err)
	}
}

func TestClipActionRequiresBox(t *testing.T) {
	w, err := New[*tensor.Dense, *tensor.Dense](newBoxEnv(t))
	if err != nil {
		t.Fatal(err)
	}
	binary, err := spaces.NewMultiBinary(2)
	if err != nil {
		t.Fatal(err)
	}
	w.SetActionSpace(binary)

	if _, err := NewClipAction[*tensor.Dense](w); err == nil {
		t.Error("expected error for a non-Box action space")
	}
}
