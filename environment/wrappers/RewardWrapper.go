package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// RewardWrapper transforms the rewards returned by Step of the wrapped
// environment. Reset is left unchanged since no reward exists before
// the first step.
type RewardWrapper[O, A any] struct {
	*Wrapper[O, A]
	transform func(float64) float64
}

// NewRewardWrapper returns a new RewardWrapper which applies transform
// to each reward
func NewRewardWrapper[O, A any](env environment.Environment[O, A],
	transform func(float64) float64) (*RewardWrapper[O, A], error) {
	if transform == nil {
		return nil, fmt.Errorf("newRewardWrapper: transform cannot be nil")
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newRewardWrapper: %w", err)
	}

	return &RewardWrapper[O, A]{Wrapper: w, transform: transform}, nil
}

// TransformReward returns a new RewardWrapper which applies f to each
// reward
func TransformReward[O, A any](env environment.Environment[O, A],
	f func(float64) float64) (*RewardWrapper[O, A], error) {
	w, err := NewRewardWrapper(env, f)
	if err != nil {
		return nil, fmt.Errorf("transformReward: %w", err)
	}
	return w, nil
}

// Step takes one step in the wrapped environment and transforms the
// reward
func (r *RewardWrapper[O, A]) Step(action A) (ts.TimeStep[O], error) {
	step, err := r.Env().Step(action)
	if err != nil {
		return step, err
	}

	step.Reward = r.transform(step.Reward)
	return step, nil
}

func (r *RewardWrapper[O, A]) String() string {
	return fmt.Sprintf("RewardWrapper(%v)", r.Env())
}
