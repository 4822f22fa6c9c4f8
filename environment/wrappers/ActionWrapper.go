package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// ActionWrapper transforms actions before they are passed to Step of
// the wrapped environment. The result of Step is returned unchanged.
type ActionWrapper[O, A any] struct {
	*Wrapper[O, A]
	transform func(A) A
}

// NewActionWrapper returns a new ActionWrapper which applies transform
// to each action
func NewActionWrapper[O, A any](env environment.Environment[O, A],
	transform func(A) A) (*ActionWrapper[O, A], error) {
	if transform == nil {
		return nil, fmt.Errorf("newActionWrapper: transform cannot be nil")
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newActionWrapper: %w", err)
	}

	return &ActionWrapper[O, A]{Wrapper: w, transform: transform}, nil
}

// Step transforms the action and takes one step in the wrapped
// environment
func (a *ActionWrapper[O, A]) Step(action A) (ts.TimeStep[O], error) {
	return a.Env().Step(a.transform(action))
}

func (a *ActionWrapper[O, A]) String() string {
	return fmt.Sprintf("ActionWrapper(%v)", a.Env())
}
