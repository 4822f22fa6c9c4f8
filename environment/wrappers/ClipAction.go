package wrappers

import (
	"fmt"
	"math"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

// ClipAction wraps an environment with a Box action space and clips
// each action to within the bounds of the action space before it is
// passed to the wrapped environment.
//
// Since any action can be clipped, the action space of the wrapper is
// an unbounded Box of the same shape and dtype as the wrapped
// environment's action space.
type ClipAction[O any] struct {
	*Wrapper[O, *tensor.Dense]
	low, high []float64
}

// NewClipAction returns a new ClipAction wrapper
func NewClipAction[O any](env environment.Environment[O, *tensor.Dense]) (
	*ClipAction[O], error) {
	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newClipAction: %w", err)
	}

	box, ok := env.ActionSpace().(*spaces.Box)
	if !ok {
		return nil, fmt.Errorf("newClipAction: expected a Box action space, "+
			"got %v", env.ActionSpace())
	}

	actionSpace, err := spaces.NewBox(math.Inf(-1), math.Inf(1), box.Shape(),
		box.Dtype())
	if err != nil {
		return nil, fmt.Errorf("newClipAction: %w", err)
	}
	w.SetActionSpace(actionSpace)

	return &ClipAction[O]{Wrapper: w, low: box.Low(), high: box.High()}, nil
}

// Step clips the action and takes one step in the wrapped environment
func (c *ClipAction[O]) Step(action *tensor.Dense) (ts.TimeStep[O], error) {
	if action == nil {
		return ts.TimeStep[O]{}, &environment.EnvironmentError{
			Op:  "step",
			Err: fmt.Errorf("%w: nil action", environment.ErrInvalidAction),
		}
	}

	clipped, err := tensorutils.Clamp(action, c.low, c.high)
	if err != nil {
		return ts.TimeStep[O]{}, &environment.EnvironmentError{
			Op:  "step",
			Err: fmt.Errorf("%w: %v", environment.ErrInvalidAction, err),
		}
	}
	return c.Env().Step(clipped)
}

func (c *ClipAction[O]) String() string {
	return fmt.Sprintf("ClipAction(%v)", c.Env())
}
