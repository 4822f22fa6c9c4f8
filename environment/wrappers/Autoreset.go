package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

const (
	// FinalObservationKey holds the last observation of an episode in
	// the info returned when Autoreset resets an environment
	FinalObservationKey = "final_observation"

	// FinalInfoKey holds the info of the last step of an episode in the
	// info returned when Autoreset resets an environment
	FinalInfoKey = "final_info"
)

// Autoreset wraps an environment and resets it automatically. When a
// step ends an episode (terminated or truncated), the next call to
// Step ignores its action, resets the wrapped environment, and returns
// the first observation of the new episode with a reward of 0 and
// neither the terminated nor truncated flag set.
//
// The info returned by such a step is the info returned by the reset,
// together with the last observation and info of the finished episode
// under FinalObservationKey and FinalInfoKey.
type Autoreset[O, A any] struct {
	*Wrapper[O, A]

	autoreset bool
	lastStep  ts.TimeStep[O]
}

// NewAutoreset returns a new Autoreset wrapper
func NewAutoreset[O, A any](env environment.Environment[O, A]) (
	*Autoreset[O, A], error) {
	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newAutoreset: %w", err)
	}

	return &Autoreset[O, A]{Wrapper: w}, nil
}

// Reset resets the wrapped environment. Calling Reset directly cancels
// any pending automatic reset.
func (a *Autoreset[O, A]) Reset(opts environment.Options) (ts.TimeStep[O],
	error) {
	a.autoreset = false
	return a.Env().Reset(opts)
}

// Step takes one step in the wrapped environment, or resets it if the
// previous step ended an episode
func (a *Autoreset[O, A]) Step(action A) (ts.TimeStep[O], error) {
	if !a.autoreset {
		step, err := a.Env().Step(action)
		if err != nil {
			return step, err
		}

		a.autoreset = step.Last()
		a.lastStep = step
		return step, nil
	}

	step, err := a.Env().Reset(nil)
	if err != nil {
		return step, fmt.Errorf("step: could not reset environment: %w", err)
	}
	a.autoreset = false

	step.Reward = 0
	step.Terminated = false
	step.Truncated = false

	info := step.Info.Clone()
	info[FinalObservationKey] = a.lastStep.Observation
	info[FinalInfoKey] = a.lastStep.Info
	step.Info = info

	return step, nil
}

func (a *Autoreset[O, A]) String() string {
	return fmt.Sprintf("Autoreset(%v)", a.Env())
}
