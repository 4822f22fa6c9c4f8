package spaces

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

// MultiDiscrete represents the Cartesian product of Discrete spaces.
// Element i of a value is an integer in (0, 1, ..., nvec[i]-1). Values
// are one-dimensional *tensor.Dense of dtype tensor.Int64.
//
// MultiDiscrete is useful for describing game controllers, where each
// button or axis has its own finite number of settings.
type MultiDiscrete struct {
	rand.Source
	nvec []int
}

// NewMultiDiscrete returns a new MultiDiscrete space where element i
// has nvec[i] possible values. All counts must be positive.
func NewMultiDiscrete(nvec ...int) (*MultiDiscrete, error) {
	if len(nvec) == 0 {
		return nil, invalid("newMultiDiscrete", "at least one count is "+
			"required")
	}
	for _, n := range nvec {
		if n < 1 {
			return nil, invalid("newMultiDiscrete", "nvec (counts) have "+
				"to be positive, got %v", nvec)
		}
	}

	return &MultiDiscrete{Source: newSource(), nvec: copyShape(nvec)}, nil
}

// Nvec returns the number of values each element can take
func (m *MultiDiscrete) Nvec() []int {
	return copyShape(m.nvec)
}

// Shape returns the shape of values in the space
func (m *MultiDiscrete) Shape() []int {
	return []int{len(m.nvec)}
}

// Dtype returns the dtype of values in the space
func (m *MultiDiscrete) Dtype() tensor.Dtype {
	return tensor.Int64
}

// Sample takes a sample from the space, with each element drawn
// uniformly from its own range
func (m *MultiDiscrete) Sample() *tensor.Dense {
	sample := make([]float64, len(m.nvec))
	for i, n := range m.nvec {
		v := distuv.Uniform{Min: 0, Max: float64(n), Src: m.Source}.Rand()
		sample[i] = math.Min(math.Floor(v), float64(n-1))
	}

	t, err := tensorutils.New(tensor.Int64, m.Shape(), sample)
	if err != nil {
		panic(fmt.Sprintf("sample: could not create sample: %v", err))
	}
	return t
}

// SampleValue takes a sample from the space
func (m *MultiDiscrete) SampleValue() interface{} {
	return m.Sample()
}

// Contains returns whether x is in the space. The argument x must be a
// tensor.Tensor of dtype tensor.Int64 with the shape of the space.
func (m *MultiDiscrete) Contains(x interface{}) bool {
	t, ok := asTensor(x)
	if !ok {
		return false
	}
	if t.Dtype() != tensor.Int64 || !sameShape(t.Shape(), m.Shape()) {
		return false
	}

	data, ok := tensorutils.Float64s(t)
	if !ok {
		return false
	}
	for i, v := range data {
		if v < 0 || v >= float64(m.nvec[i]) {
			return false
		}
	}
	return true
}

// Equals returns whether other is a MultiDiscrete space with the same
// counts
func (m *MultiDiscrete) Equals(other Space) bool {
	o, ok := other.(*MultiDiscrete)
	return ok && sameShape(o.nvec, m.nvec)
}

func (m *MultiDiscrete) String() string {
	return fmt.Sprintf("MultiDiscrete(%v)", m.nvec)
}
