package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// AverageReward wraps an environment and alters rewards so that the
// differential reward is returned for each action:
//
//	R_{t} <- R_{t} - avgReward_{t}
//
// The average reward of the policy acting in the environment is
// estimated as an exponential moving average of the rewards from the
// environment:
//
//	avgReward <- avgReward + learningRate * (target - avgReward)
//
// where the target is the most recent reward before the current step.
// The estimate is kept across episodes.
type AverageReward[O, A any] struct {
	*Wrapper[O, A]
	avgReward    float64
	learningRate float64

	// The reward of the last step is the target of the next average
	// reward update. It is only valid if hasLastReward is set.
	lastReward    float64
	hasLastReward bool
}

// NewAverageReward creates and returns a new AverageReward wrapper.
// The init parameter is the initial value for the average reward,
// usually set to 0.
func NewAverageReward[O, A any](env environment.Environment[O, A], init,
	learningRate float64) (*AverageReward[O, A], error) {
	if learningRate <= 0 || learningRate > 1 {
		return nil, fmt.Errorf("newAverageReward: learning rate must be in "+
			"(0, 1], got %v", learningRate)
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newAverageReward: %w", err)
	}

	return &AverageReward[O, A]{
		Wrapper:      w,
		avgReward:    init,
		learningRate: learningRate,
	}, nil
}

// Reset resets the wrapped environment. The average reward estimate is
// kept.
func (a *AverageReward[O, A]) Reset(opts environment.Options) (ts.TimeStep[O],
	error) {
	a.hasLastReward = false
	return a.Env().Reset(opts)
}

// Step takes one environmental step and returns the differential
// reward
func (a *AverageReward[O, A]) Step(action A) (ts.TimeStep[O], error) {
	// step will be the TimeStep with S_{t+1} and R_{t} for action A_{t}
	step, err := a.Env().Step(action)
	if err != nil {
		return step, err
	}

	// Update avgReward_{t-1} -> avgReward_{t}
	if a.hasLastReward {
		a.avgReward += a.learningRate * (a.lastReward - a.avgReward)
	}
	a.lastReward = step.Reward
	a.hasLastReward = true

	step.Reward -= a.avgReward
	return step, nil
}

// AverageReward returns the current average reward estimate
func (a *AverageReward[O, A]) AverageReward() float64 {
	return a.avgReward
}

// String returns a string representation of the AverageReward
// environment
func (a *AverageReward[O, A]) String() string {
	return fmt.Sprintf("AverageReward(%v)", a.Env())
}
