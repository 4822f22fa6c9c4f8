package wrappers

import (
	"testing"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// countEnv is a deterministic environment whose observation is the
// number of steps since the last reset and whose reward is the action
// taken
type countEnv struct {
	environment.Base[int, int]

	terminateAt int // never terminates if 0
	info        environment.Info

	last            ts.TimeStep[int]
	hasReset        bool
	resets, renders int
	closes          int
}

func newCountEnv(t *testing.T, terminateAt int) *countEnv {
	t.Helper()

	actionSpace, err := spaces.NewDiscrete(5)
	if err != nil {
		t.Fatal(err)
	}
	observationSpace, err := spaces.NewDiscrete(1000)
	if err != nil {
		t.Fatal(err)
	}
	base, err := environment.NewBase[int, int](actionSpace, observationSpace,
		environment.RGBArray)
	if err != nil {
		t.Fatal(err)
	}

	return &countEnv{Base: base, terminateAt: terminateAt}
}

func (c *countEnv) Reset(environment.Options) (ts.TimeStep[int], error) {
	c.hasReset = true
	c.resets++
	c.last = ts.New(0, nil)
	return c.last, nil
}

func (c *countEnv) Step(action int) (ts.TimeStep[int], error) {
	if !c.hasReset {
		return ts.TimeStep[int]{}, &environment.EnvironmentError{
			Op:  "step",
			Err: environment.ErrStateUndefined,
		}
	}

	obs := c.last.Number + 1
	terminated := c.terminateAt > 0 && obs >= c.terminateAt
	c.last = ts.Next(c.last, obs, float64(action), terminated, false, c.info)
	return c.last, nil
}

func (c *countEnv) Render() (*tensor.Dense, error) {
	c.renders++
	return nil, nil
}

func (c *countEnv) Close() error {
	c.closes++
	return nil
}

func (c *countEnv) Unwrapped() environment.Environment[int, int] {
	return c
}

// boxEnv is an environment with Box actions in [-1, 1]^2 whose
// observation is the last action it received
type boxEnv struct {
	environment.Base[*tensor.Dense, *tensor.Dense]
	last ts.TimeStep[*tensor.Dense]
}

func newBoxEnv(t *testing.T) *boxEnv {
	t.Helper()

	space, err := spaces.NewBox(-1, 1, []int{2}, tensor.Float64)
	if err != nil {
		t.Fatal(err)
	}
	base, err := environment.NewBase[*tensor.Dense, *tensor.Dense](space,
		space, environment.NoRender)
	if err != nil {
		t.Fatal(err)
	}

	return &boxEnv{Base: base}
}

func (b *boxEnv) Reset(environment.Options) (ts.TimeStep[*tensor.Dense],
	error) {
	obs := tensor.New(tensor.WithShape(2), tensor.WithBacking([]float64{0, 0}))
	b.last = ts.New(obs, nil)
	return b.last, nil
}

func (b *boxEnv) Step(action *tensor.Dense) (ts.TimeStep[*tensor.Dense],
	error) {
	b.last = ts.Next(b.last, action, 0, false, false, nil)
	return b.last, nil
}

func (b *boxEnv) Render() (*tensor.Dense, error) { return nil, nil }

func (b *boxEnv) Close() error { return nil }

func (b *boxEnv) Unwrapped() environment.Environment[*tensor.Dense,
	*tensor.Dense] {
	return b
}

func vec(values ...float64) *tensor.Dense {
	return tensor.New(tensor.WithShape(len(values)), tensor.WithBacking(values))
}

func mustReset(t *testing.T, env environment.Environment[int, int]) ts.TimeStep[int] {
	t.Helper()
	step, err := env.Reset(nil)
	if err != nil {
		t.Fatal(err)
	}
	return step
}

func mustStep(t *testing.T, env environment.Environment[int, int],
	action int) ts.TimeStep[int] {
	t.Helper()
	step, err := env.Step(action)
	if err != nil {
		t.Fatal(err)
	}
	return step
}
