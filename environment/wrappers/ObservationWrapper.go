package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// ObservationWrapper transforms the observations returned by Reset and
// Step of the wrapped environment. Rewards, flags, and info are
// returned unchanged.
type ObservationWrapper[O, A any] struct {
	*Wrapper[O, A]
	transform func(O) O
}

// NewObservationWrapper returns a new ObservationWrapper which applies
// transform to each observation
func NewObservationWrapper[O, A any](env environment.Environment[O, A],
	transform func(O) O) (*ObservationWrapper[O, A], error) {
	if transform == nil {
		return nil, fmt.Errorf("newObservationWrapper: transform cannot be " +
			"nil")
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newObservationWrapper: %w", err)
	}

	return &ObservationWrapper[O, A]{Wrapper: w, transform: transform}, nil
}

// TransformObservation returns a new ObservationWrapper which applies
// f to each observation. If space is not nil, it becomes the
// observation space of the wrapper.
func TransformObservation[O, A any](env environment.Environment[O, A],
	f func(O) O, space spaces.Of[O]) (*ObservationWrapper[O, A], error) {
	w, err := NewObservationWrapper(env, f)
	if err != nil {
		return nil, fmt.Errorf("transformObservation: %w", err)
	}
	if space != nil {
		w.SetObservationSpace(space)
	}
	return w, nil
}

// Reset resets the wrapped environment and transforms the first
// observation
func (o *ObservationWrapper[O, A]) Reset(
	opts environment.Options) (ts.TimeStep[O], error) {
	step, err := o.Env().Reset(opts)
	if err != nil {
		return step, err
	}

	step.Observation = o.transform(step.Observation)
	return step, nil
}

// Step takes one step in the wrapped environment and transforms the
// next observation
func (o *ObservationWrapper[O, A]) Step(action A) (ts.TimeStep[O], error) {
	step, err := o.Env().Step(action)
	if err != nil {
		return step, err
	}

	step.Observation = o.transform(step.Observation)
	return step, nil
}

func (o *ObservationWrapper[O, A]) String() string {
	return fmt.Sprintf("ObservationWrapper(%v)", o.Env())
}
