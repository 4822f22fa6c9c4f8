package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
	Seed(seed uint64)
}

// UniformStarter samples starting states uniformly within a box
type UniformStarter struct {
	source rand.Source
	bounds []r1.Interval
	rand   *distmv.Uniform
}

// NewUniformStarter returns a new UniformStarter which samples each
// state feature uniformly from the corresponding interval in bounds
func NewUniformStarter(bounds []r1.Interval, seed uint64) (*UniformStarter,
	error) {
	if err := validateBounds(bounds); err != nil {
		return nil, fmt.Errorf("newUniformStarter: %v", err)
	}

	source := rand.NewSource(seed)
	b := make([]r1.Interval, len(bounds))
	copy(b, bounds)

	return &UniformStarter{
		source: source,
		bounds: b,
		rand:   distmv.NewUniform(b, source),
	}, nil
}

// Start samples a starting state
func (u *UniformStarter) Start() *mat.VecDense {
	return mat.NewVecDense(len(u.bounds), u.rand.Rand(nil))
}

// Seed reseeds the starter
func (u *UniformStarter) Seed(seed uint64) {
	u.source.Seed(seed)
}

// Bounds returns the intervals from which starting states are sampled
func (u *UniformStarter) Bounds() []r1.Interval {
	b := make([]r1.Interval, len(u.bounds))
	copy(b, u.bounds)
	return b
}

// SetBounds changes the intervals from which starting states are
// sampled. The number of intervals cannot change.
func (u *UniformStarter) SetBounds(bounds []r1.Interval) error {
	if len(bounds) != len(u.bounds) {
		return fmt.Errorf("setBounds: expected %v intervals, got %v",
			len(u.bounds), len(bounds))
	}
	if err := validateBounds(bounds); err != nil {
		return fmt.Errorf("setBounds: %v", err)
	}

	copy(u.bounds, bounds)
	u.rand = distmv.NewUniform(u.bounds, u.source)
	return nil
}

func validateBounds(bounds []r1.Interval) error {
	if len(bounds) == 0 {
		return fmt.Errorf("at least one interval is required")
	}
	for i, b := range bounds {
		if b.Min > b.Max {
			return fmt.Errorf("interval %v has min (%v) > max (%v)", i,
				b.Min, b.Max)
		}
	}
	return nil
}
