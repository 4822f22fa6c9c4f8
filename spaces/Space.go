// Package spaces implements descriptions of the sets of legal actions
// and observations of an environment. Each space can check whether a
// value is a member of the set it describes, compare itself with other
// spaces, and draw random members from the set.
package spaces

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

// ErrInvalidSpace is wrapped by all errors returned when a space is
// constructed with illegal parameters
var ErrInvalidSpace = errors.New("invalid space")

// Space describes a set of legal values. Space is the type-erased view
// of a space, which allows spaces of different value types to be
// composed, for example in a Dict.
type Space interface {
	fmt.Stringer

	// Shape returns the dimensions of values in the space. Scalar
	// spaces have an empty shape.
	Shape() []int

	// Dtype returns the kind of the elements of values in the space
	Dtype() tensor.Dtype

	// Contains returns whether x is in the space. Values of the wrong
	// type, shape, or dtype are never in the space.
	Contains(x interface{}) bool

	// Equals returns whether other describes the same set of values
	Equals(other Space) bool

	// SampleValue takes a sample from the space
	SampleValue() interface{}

	// Seed seeds the sampler for the space
	Seed(seed uint64)
}

// Of is a Space whose values have type T
type Of[T any] interface {
	Space

	// Sample takes a sample from within the space's bounds
	Sample() T
}

// newSource returns a new source of randomness seeded with the current
// time
func newSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// invalid returns an error describing a space constructed with illegal
// parameters
func invalid(op, format string, args ...interface{}) error {
	return fmt.Errorf("%v: %v: %w", op, fmt.Sprintf(format, args...),
		ErrInvalidSpace)
}

// asTensor returns x as a non-nil tensor.Tensor
func asTensor(x interface{}) (tensor.Tensor, bool) {
	t, ok := x.(tensor.Tensor)
	if !ok || t == nil {
		return nil, false
	}
	if dense, ok := t.(*tensor.Dense); ok && dense == nil {
		return nil, false
	}
	return t, true
}

// sameShape returns whether two shapes have the same dimensions
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}
