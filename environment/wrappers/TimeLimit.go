package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// TimeLimit wraps an environment and provides for it a limit on the
// number of steps in an episode. Once the limit is reached, the last
// step is truncated. Termination and truncation signals from the
// wrapped environment are never suppressed.
type TimeLimit[O, A any] struct {
	*Wrapper[O, A]

	maxEpisodeSteps int
	elapsedSteps    int // -1 before the first reset
}

// NewTimeLimit creates a new TimeLimit wrapper which truncates
// episodes after maxEpisodeSteps steps
func NewTimeLimit[O, A any](env environment.Environment[O, A],
	maxEpisodeSteps int) (*TimeLimit[O, A], error) {
	if maxEpisodeSteps <= 0 {
		return nil, fmt.Errorf("newTimeLimit: maxEpisodeSteps must be " +
			"positive")
	}

	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newTimeLimit: %w", err)
	}

	return &TimeLimit[O, A]{
		Wrapper:         w,
		maxEpisodeSteps: maxEpisodeSteps,
		elapsedSteps:    -1,
	}, nil
}

// Reset resets the wrapped environment and the step counter
func (t *TimeLimit[O, A]) Reset(opts environment.Options) (ts.TimeStep[O],
	error) {
	step, err := t.Env().Reset(opts)
	if err != nil {
		return step, err
	}

	t.elapsedSteps = 0
	return step, nil
}

// Step takes one step in the wrapped environment, truncating the
// episode if the step limit has been reached
func (t *TimeLimit[O, A]) Step(action A) (ts.TimeStep[O], error) {
	step, err := t.Env().Step(action)
	if err != nil {
		return step, err
	}

	t.elapsedSteps++
	if t.elapsedSteps >= t.maxEpisodeSteps {
		step.Truncated = true
		step.Sync()
	}
	return step, nil
}

// MaxEpisodeSteps returns the maximum number of steps in an episode
func (t *TimeLimit[O, A]) MaxEpisodeSteps() int {
	return t.maxEpisodeSteps
}

// ElapsedSteps returns the number of steps taken since the last reset,
// or -1 if the environment has never been reset
func (t *TimeLimit[O, A]) ElapsedSteps() int {
	return t.elapsedSteps
}

func (t *TimeLimit[O, A]) String() string {
	return fmt.Sprintf("TimeLimit(steps: %v)(%v)", t.maxEpisodeSteps, t.Env())
}
