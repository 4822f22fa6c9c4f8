package spaces

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/utils/intutils"
	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

// MultiBinary represents a space of binary arrays. Values in the space
// are *tensor.Dense of dtype tensor.Int8 where each element is either
// 0 or 1. The shape of values is given by the counts the space is
// constructed with.
type MultiBinary struct {
	rand.Source
	n []int
}

// NewMultiBinary returns a new MultiBinary space whose values have
// shape n. All counts in n must be positive.
func NewMultiBinary(n ...int) (*MultiBinary, error) {
	if len(n) == 0 {
		return nil, invalid("newMultiBinary", "at least one count is "+
			"required")
	}
	for _, count := range n {
		if count < 1 {
			return nil, invalid("newMultiBinary", "n (counts) have to be "+
				"positive, got %v", n)
		}
	}

	return &MultiBinary{Source: newSource(), n: copyShape(n)}, nil
}

// Shape returns the shape of values in the space
func (m *MultiBinary) Shape() []int {
	return copyShape(m.n)
}

// Dtype returns the dtype of values in the space
func (m *MultiBinary) Dtype() tensor.Dtype {
	return tensor.Int8
}

// Sample takes a sample from the space. Each element is 1 with
// probability 0.5.
func (m *MultiBinary) Sample() *tensor.Dense {
	rng := distuv.Bernoulli{P: 0.5, Src: m.Source}

	sample := make([]float64, intutils.Prod(m.n...))
	for i := range sample {
		sample[i] = rng.Rand()
	}

	t, err := tensorutils.New(tensor.Int8, m.n, sample)
	if err != nil {
		panic(fmt.Sprintf("sample: could not create sample: %v", err))
	}
	return t
}

// SampleValue takes a sample from the space
func (m *MultiBinary) SampleValue() interface{} {
	return m.Sample()
}

// Contains returns whether x is in the space. The argument x must be a
// tensor.Tensor of dtype tensor.Int8 with the shape of the space.
func (m *MultiBinary) Contains(x interface{}) bool {
	t, ok := asTensor(x)
	if !ok {
		return false
	}
	if t.Dtype() != tensor.Int8 || !sameShape(t.Shape(), m.n) {
		return false
	}

	data, ok := tensorutils.Float64s(t)
	if !ok {
		return false
	}
	for _, v := range data {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}

// Equals returns whether other is a MultiBinary space of the same
// shape
func (m *MultiBinary) Equals(other Space) bool {
	o, ok := other.(*MultiBinary)
	return ok && sameShape(o.n, m.n)
}

func (m *MultiBinary) String() string {
	return fmt.Sprintf("MultiBinary(%v)", m.n)
}
