package wrappers

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// OrderEnforcing wraps an environment and returns an error if Step is
// called before Reset. Render is also guarded unless render order
// enforcement is disabled.
type OrderEnforcing[O, A any] struct {
	*Wrapper[O, A]

	hasReset                    bool
	disableRenderOrderEnforcing bool
}

// NewOrderEnforcing returns a new OrderEnforcing wrapper. If
// disableRenderOrderEnforcing is true, the environment may be rendered
// before it is reset.
func NewOrderEnforcing[O, A any](env environment.Environment[O, A],
	disableRenderOrderEnforcing bool) (*OrderEnforcing[O, A], error) {
	w, err := New(env)
	if err != nil {
		return nil, fmt.Errorf("newOrderEnforcing: %w", err)
	}

	return &OrderEnforcing[O, A]{
		Wrapper:                     w,
		disableRenderOrderEnforcing: disableRenderOrderEnforcing,
	}, nil
}

// Reset resets the wrapped environment
func (o *OrderEnforcing[O, A]) Reset(
	opts environment.Options) (ts.TimeStep[O], error) {
	o.hasReset = true
	return o.Env().Reset(opts)
}

// Step takes one step in the wrapped environment if it has been reset
func (o *OrderEnforcing[O, A]) Step(action A) (ts.TimeStep[O], error) {
	if !o.hasReset {
		return ts.TimeStep[O]{}, &environment.EnvironmentError{
			Op:  "step",
			Err: ErrResetNeeded,
		}
	}
	return o.Env().Step(action)
}

// Render renders the wrapped environment if it has been reset or render
// order enforcement is disabled
func (o *OrderEnforcing[O, A]) Render() (*tensor.Dense, error) {
	if !o.disableRenderOrderEnforcing && !o.hasReset {
		return nil, &environment.EnvironmentError{
			Op: "render",
			Err: fmt.Errorf("%w, you can disable this error by setting "+
				"disableRenderOrderEnforcing", ErrResetNeeded),
		}
	}
	return o.Env().Render()
}

// HasReset returns whether the environment has been reset
func (o *OrderEnforcing[O, A]) HasReset() bool {
	return o.hasReset
}

func (o *OrderEnforcing[O, A]) String() string {
	return fmt.Sprintf("OrderEnforcing(%v)", o.Env())
}
