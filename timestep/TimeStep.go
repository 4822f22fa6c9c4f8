// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Info holds auxiliary diagnostic information returned alongside an
// observation. A nil Info means no information was returned.
type Info map[string]interface{}

// Clone returns a shallow copy of the Info. The clone of a nil Info is
// an empty Info so that it can be written to.
func (i Info) Clone() Info {
	clone := make(Info, len(i))
	for k, v := range i {
		clone[k] = v
	}
	return clone
}

// TimeStep packages together a single timestep in an environment, the
// result of either resetting or stepping an environment with
// observations of type O.
//
// Terminated is set when the episode reached a terminal state of the
// underlying task. Truncated is set when the episode was ended for any
// other reason, such as a time limit. The two are never collapsed.
type TimeStep[O any] struct {
	StepType    StepType
	Observation O
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        Info
	Number      int
}

// New returns the first TimeStep of an episode
func New[O any](obs O, info Info) TimeStep[O] {
	return TimeStep[O]{StepType: First, Observation: obs, Info: info}
}

// Next returns the TimeStep following t. The step type is inferred from
// the terminated and truncated flags.
func Next[O any](t TimeStep[O], obs O, reward float64, terminated,
	truncated bool, info Info) TimeStep[O] {
	next := TimeStep[O]{
		StepType:    Mid,
		Observation: obs,
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   truncated,
		Info:        info,
		Number:      t.Number + 1,
	}
	next.Sync()
	return next
}

// Sync recomputes the step type of a non-first TimeStep from its
// terminated and truncated flags. Wrappers which change the flags
// should call Sync afterwards.
func (t *TimeStep[O]) Sync() {
	if t.StepType == First && !t.Terminated && !t.Truncated {
		return
	}
	if t.Terminated || t.Truncated {
		t.StepType = Last
	} else {
		t.StepType = Mid
	}
}

// First returns whether a TimeStep is the first in an episode
func (t TimeStep[O]) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t TimeStep[O]) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep ends an episode, that is whether the
// episode was terminated or truncated
func (t TimeStep[O]) Last() bool {
	return t.Terminated || t.Truncated
}

func (t TimeStep[O]) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Terminated: %v  |  " +
		"Truncated: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Terminated, t.Truncated,
		t.Number)
}
