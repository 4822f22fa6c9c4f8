// Package wrappers provides wrappers for environments. A wrapper holds
// exactly one wrapped environment, which may itself be a wrapper, and
// forwards all calls to it except for the one behaviour that the
// wrapper changes.
package wrappers

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/spaces"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// Wrapper wraps an environment and forwards all calls to it. The
// action space, observation space, and render mode of a Wrapper are
// those of the wrapped environment unless overridden with
// SetActionSpace, SetObservationSpace, or SetRenderMode.
//
// Concrete wrappers embed a *Wrapper and override the methods they
// change.
type Wrapper[O, A any] struct {
	env environment.Environment[O, A]

	actionSpace      spaces.Of[A]
	observationSpace spaces.Of[O]
	renderMode       *environment.RenderMode
}

// New returns a new Wrapper around env
func New[O, A any](env environment.Environment[O, A]) (*Wrapper[O, A],
	error) {
	if env == nil {
		return nil, fmt.Errorf("new: %w", ErrNilEnv)
	}
	return &Wrapper[O, A]{env: env}, nil
}

// Env returns the wrapped environment
func (w *Wrapper[O, A]) Env() environment.Environment[O, A] {
	return w.env
}

// Reset resets the wrapped environment
func (w *Wrapper[O, A]) Reset(opts environment.Options) (ts.TimeStep[O],
	error) {
	return w.env.Reset(opts)
}

// Step takes one step in the wrapped environment
func (w *Wrapper[O, A]) Step(action A) (ts.TimeStep[O], error) {
	return w.env.Step(action)
}

// Render renders the wrapped environment
func (w *Wrapper[O, A]) Render() (*tensor.Dense, error) {
	return w.env.Render()
}

// Close closes the wrapped environment
func (w *Wrapper[O, A]) Close() error {
	return w.env.Close()
}

// ActionSpace returns the action space of the wrapper if one was set,
// otherwise the action space of the wrapped environment
func (w *Wrapper[O, A]) ActionSpace() spaces.Of[A] {
	if w.actionSpace != nil {
		return w.actionSpace
	}
	return w.env.ActionSpace()
}

// SetActionSpace overrides the action space of the wrapped environment.
// Setting a nil space removes the override.
func (w *Wrapper[O, A]) SetActionSpace(space spaces.Of[A]) {
	w.actionSpace = space
}

// ObservationSpace returns the observation space of the wrapper if one
// was set, otherwise the observation space of the wrapped environment
func (w *Wrapper[O, A]) ObservationSpace() spaces.Of[O] {
	if w.observationSpace != nil {
		return w.observationSpace
	}
	return w.env.ObservationSpace()
}

// SetObservationSpace overrides the observation space of the wrapped
// environment. Setting a nil space removes the override.
func (w *Wrapper[O, A]) SetObservationSpace(space spaces.Of[O]) {
	w.observationSpace = space
}

// RenderMode returns the render mode of the wrapper if one was set,
// otherwise the render mode of the wrapped environment
func (w *Wrapper[O, A]) RenderMode() environment.RenderMode {
	if w.renderMode != nil {
		return *w.renderMode
	}
	return w.env.RenderMode()
}

// SetRenderMode overrides the render mode of the wrapped environment
func (w *Wrapper[O, A]) SetRenderMode(mode environment.RenderMode) {
	w.renderMode = &mode
}

// Unwrapped returns the base environment at the bottom of the chain of
// wrappers
func (w *Wrapper[O, A]) Unwrapped() environment.Environment[O, A] {
	return w.env.Unwrapped()
}

func (w *Wrapper[O, A]) String() string {
	return fmt.Sprintf("Wrapper(%v)", w.env)
}
