// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/spaces"
	"github.com/samuelfneumann/gogymnasium/timestep"
)

// Info holds auxiliary diagnostic information returned by Reset and
// Step
type Info = timestep.Info

// Options holds optional arguments to Reset. Every environment
// understands the "seed" option, which reseeds the environment's
// randomness. Environments document any other options they accept.
type Options map[string]interface{}

// Seed returns the seed stored in the options, if any. Seeds may be
// given as any non-negative Go integer.
func (o Options) Seed() (uint64, bool, error) {
	v, ok := o["seed"]
	if !ok || v == nil {
		return 0, false, nil
	}

	switch seed := v.(type) {
	case uint64:
		return seed, true, nil
	case uint:
		return uint64(seed), true, nil
	case uint32:
		return uint64(seed), true, nil
	case int:
		if seed >= 0 {
			return uint64(seed), true, nil
		}
	case int64:
		if seed >= 0 {
			return uint64(seed), true, nil
		}
	case int32:
		if seed >= 0 {
			return uint64(seed), true, nil
		}
	case float64:
		// Seeds decoded from JSON arrive as float64
		if seed >= 0 && seed == float64(uint64(seed)) {
			return uint64(seed), true, nil
		}
	}
	return 0, false, fmt.Errorf("seed: illegal seed %v", v)
}

// Float64 returns the float64 option stored at key, if any
func (o Options) Float64(key string) (float64, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false, nil
	}

	switch f := v.(type) {
	case float64:
		return f, true, nil
	case float32:
		return float64(f), true, nil
	case int:
		return float64(f), true, nil
	}
	return 0, false, fmt.Errorf("float64: option %v has illegal value %v",
		key, v)
}

// RenderMode determines how an environment renders
type RenderMode string

const (
	// NoRender environments return nil frames from Render
	NoRender RenderMode = ""

	// Human environments present frames on a display surface and pace
	// steps to real time. Render returns a nil frame.
	Human RenderMode = "human"

	// RGBArray environments return each frame from Render as a
	// height × width × 3 tensor of uint8
	RGBArray RenderMode = "rgb_array"
)

// Valid returns whether the RenderMode is a known mode
func (r RenderMode) Valid() bool {
	return r == NoRender || r == Human || r == RGBArray
}

// Environment implements a simulated environment with observations of
// type O and actions of type A.
//
// Reset must be called before the first call to Step. Each call to
// Step after an episode has ended (Terminated or Truncated) has
// undefined results until Reset is called again.
type Environment[O, A any] interface {
	// Reset starts a new episode and returns its first TimeStep
	Reset(opts Options) (timestep.TimeStep[O], error)

	// Step takes one environmental step with the given action
	Step(action A) (timestep.TimeStep[O], error)

	// Render renders the environment. Environments with the RGBArray
	// render mode return the frame, others return a nil frame.
	Render() (*tensor.Dense, error)

	// Close releases all resources held by the environment. Calling
	// Close more than once is a no-op.
	Close() error

	ActionSpace() spaces.Of[A]
	ObservationSpace() spaces.Of[O]
	RenderMode() RenderMode

	// Unwrapped returns the base, non-wrapped environment
	Unwrapped() Environment[O, A]
}

// Base holds the spaces and render mode of an environment. Concrete
// environments embed a Base and implement the remaining methods of
// Environment.
type Base[O, A any] struct {
	actionSpace      spaces.Of[A]
	observationSpace spaces.Of[O]
	renderMode       RenderMode
}

// NewBase returns a new Base
func NewBase[O, A any](actionSpace spaces.Of[A],
	observationSpace spaces.Of[O], renderMode RenderMode) (Base[O, A], error) {
	if actionSpace == nil || observationSpace == nil {
		return Base[O, A]{}, fmt.Errorf("newBase: spaces cannot be nil")
	}
	if !renderMode.Valid() {
		return Base[O, A]{}, fmt.Errorf("newBase: unknown render mode %q",
			renderMode)
	}

	return Base[O, A]{
		actionSpace:      actionSpace,
		observationSpace: observationSpace,
		renderMode:       renderMode,
	}, nil
}

// ActionSpace returns the action space of the environment
func (b *Base[O, A]) ActionSpace() spaces.Of[A] {
	return b.actionSpace
}

// ObservationSpace returns the observation space of the environment
func (b *Base[O, A]) ObservationSpace() spaces.Of[O] {
	return b.observationSpace
}

// RenderMode returns the render mode of the environment
func (b *Base[O, A]) RenderMode() RenderMode {
	return b.renderMode
}

// SeedSpaces seeds the action and observation spaces of the
// environment
func (b *Base[O, A]) SeedSpaces(seed uint64) {
	b.actionSpace.Seed(seed)
	b.observationSpace.Seed(seed + 1)
}
