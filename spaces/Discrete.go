package spaces

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// Discrete represents a space of n consecutive integers:
// (start, start+1, ..., start+n-1).
type Discrete struct {
	rand.Source
	rng   distuv.Categorical
	n     int
	start int
}

// NewDiscrete returns a new Discrete space over (0, 1, ..., n-1)
func NewDiscrete(n int) (*Discrete, error) {
	return NewDiscreteWithStart(n, 0)
}

// NewDiscreteWithStart returns a new Discrete space over
// (start, start+1, ..., start+n-1). The number of elements n must be
// positive.
func NewDiscreteWithStart(n, start int) (*Discrete, error) {
	if n < 1 {
		return nil, invalid("newDiscrete", "n (counts) have to be "+
			"positive, got %v", n)
	}

	src := newSource()
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0
	}

	return &Discrete{
		Source: src,
		rng:    distuv.NewCategorical(weights, src),
		n:      n,
		start:  start,
	}, nil
}

// N returns the number of elements in the space
func (d *Discrete) N() int {
	return d.n
}

// Start returns the smallest element in the space
func (d *Discrete) Start() int {
	return d.start
}

// Shape returns the shape of the space, which is always empty since
// Discrete spaces hold scalars
func (d *Discrete) Shape() []int {
	return []int{}
}

// Dtype returns the dtype of the elements of the space
func (d *Discrete) Dtype() tensor.Dtype {
	return tensor.Int
}

// Sample takes a sample from within the space's bounds
func (d *Discrete) Sample() int {
	return d.start + int(d.rng.Rand())
}

// SampleValue takes a sample from within the space's bounds
func (d *Discrete) SampleValue() interface{} {
	return d.Sample()
}

// Contains returns whether x is in the space. The argument x must be
// a Go integer.
func (d *Discrete) Contains(x interface{}) bool {
	var v int64
	switch i := x.(type) {
	case int:
		v = int64(i)
	case int8:
		v = int64(i)
	case int16:
		v = int64(i)
	case int32:
		v = int64(i)
	case int64:
		v = i
	case uint8:
		v = int64(i)
	case uint16:
		v = int64(i)
	case uint32:
		v = int64(i)
	case uint:
		if uint64(i) > math.MaxInt64 {
			return false
		}
		v = int64(i)
	case uint64:
		if i > math.MaxInt64 {
			return false
		}
		v = int64(i)
	default:
		return false
	}

	return v >= int64(d.start) && v-int64(d.start) < int64(d.n)
}

// Equals returns whether other is a Discrete space over the same
// integers
func (d *Discrete) Equals(other Space) bool {
	o, ok := other.(*Discrete)
	return ok && o.n == d.n && o.start == d.start
}

func (d *Discrete) String() string {
	if d.start != 0 {
		return fmt.Sprintf("Discrete(%v, start=%v)", d.n, d.start)
	}
	return fmt.Sprintf("Discrete(%v)", d.n)
}
