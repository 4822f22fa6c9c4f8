package spaces

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/utils/floatutils"
	"github.com/samuelfneumann/gogymnasium/utils/intutils"
	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

// Box represents a (possibly unbounded) box in R^n. Specifically, a
// Box represents the Cartesian product of n closed intervals. Each
// interval has the form of one of [a, b], (-∞, b], [a, ∞), or
// (-∞, ∞) for a, b ϵ R.
//
// Values in a Box are *tensor.Dense with exactly the shape and dtype
// of the Box.
type Box struct {
	rand.Source
	shape     []int
	dtype     tensor.Dtype
	low, high []float64
}

// NewBox returns a new Box of the given shape and dtype, where each
// element is bounded by the scalars low and high.
func NewBox(low, high float64, shape []int, dtype tensor.Dtype) (*Box,
	error) {
	size := intutils.Prod(shape...)
	if size < 0 {
		size = 0
	}
	return NewBoxFromBounds(tensorutils.Fill(size, low),
		tensorutils.Fill(size, high), shape, dtype)
}

// NewBoxFromBounds returns a new Box with per-element bounds. The low
// and high bounds are given in row-major order and must each have one
// element per element of shape. If shape is nil, the Box is
// one-dimensional with len(low) elements. An empty shape describes a
// space of scalars.
//
// Finite bounds of integer Boxes must lie within the range of the
// dtype.
func NewBoxFromBounds(low, high []float64, shape []int,
	dtype tensor.Dtype) (*Box, error) {
	if shape == nil {
		shape = []int{len(low)}
	}

	for _, dim := range shape {
		if dim < 1 {
			return nil, invalid("newBox", "shape dimensions must be "+
				"positive, got %v", shape)
		}
	}
	if !tensorutils.IsNumeric(dtype) {
		return nil, invalid("newBox", "dtype %v is not numeric", dtype)
	}

	size := intutils.Prod(shape...)
	dtypeRange, integer := tensorutils.IntegerRange(dtype)
	if len(low) != size || len(high) != size {
		return nil, invalid("newBox", "shape %v requires %v bounds, got "+
			"(%v, %v)", shape, size, len(low), len(high))
	}

	boxLow := make([]float64, size)
	boxHigh := make([]float64, size)
	for i := range boxLow {
		if math.IsNaN(low[i]) || math.IsNaN(high[i]) {
			return nil, invalid("newBox", "bounds cannot be NaN")
		}
		if low[i] > high[i] {
			return nil, invalid("newBox", "low (%v) must be smaller than "+
				"high (%v) at index %v", low[i], high[i], i)
		}
		if integer && (outside(low[i], dtypeRange) ||
			outside(high[i], dtypeRange)) {
			return nil, invalid("newBox", "bounds [%v, %v] at index %v "+
				"exceed the range of dtype %v", low[i], high[i], i, dtype)
		}

		boxLow[i] = castLow(dtype, low[i])
		boxHigh[i] = tensorutils.Cast(dtype, high[i])
		if boxLow[i] > boxHigh[i] || (integer &&
			(boxHigh[i] < dtypeRange.Min || boxLow[i] > dtypeRange.Max)) {
			return nil, invalid("newBox", "bounds [%v, %v] at index %v "+
				"contain no values of dtype %v", low[i], high[i], i, dtype)
		}
	}

	return &Box{
		Source: newSource(),
		shape:  copyShape(shape),
		dtype:  dtype,
		low:    boxLow,
		high:   boxHigh,
	}, nil
}

// outside returns whether a finite bound lies outside of interval
func outside(bound float64, interval r1.Interval) bool {
	return !math.IsInf(bound, 0) && !floatutils.Within(bound, interval)
}

// castLow casts a lower bound to the precision of dtype, rounding
// integer bounds up so that the bound is never loosened
func castLow(dtype tensor.Dtype, low float64) float64 {
	if tensorutils.IsInteger(dtype) && !math.IsInf(low, 0) {
		return math.Ceil(low)
	}
	return tensorutils.Cast(dtype, low)
}

// Shape returns the shape of values in the space
func (b *Box) Shape() []int {
	return copyShape(b.shape)
}

// Dtype returns the dtype of values in the space
func (b *Box) Dtype() tensor.Dtype {
	return b.dtype
}

// Low returns the lower bounds of the space in row-major order
func (b *Box) Low() []float64 {
	low := make([]float64, len(b.low))
	copy(low, b.low)
	return low
}

// High returns the upper bounds of the space in row-major order
func (b *Box) High() []float64 {
	high := make([]float64, len(b.high))
	copy(high, b.high)
	return high
}

// Bounds returns the interval that bounds each element of the space
// in row-major order
func (b *Box) Bounds() []r1.Interval {
	bounds := make([]r1.Interval, len(b.low))
	for i := range bounds {
		bounds[i] = r1.Interval{Min: b.low[i], Max: b.high[i]}
	}
	return bounds
}

// BoundedBelow returns whether each element of the space is bounded
// below
func (b *Box) BoundedBelow() []bool {
	bounded := make([]bool, len(b.low))
	for i := range bounded {
		bounded[i] = !math.IsInf(b.low[i], -1)
	}
	return bounded
}

// BoundedAbove returns whether each element of the space is bounded
// above
func (b *Box) BoundedAbove() []bool {
	bounded := make([]bool, len(b.high))
	for i := range bounded {
		bounded[i] = !math.IsInf(b.high[i], 1)
	}
	return bounded
}

// IsBounded returns whether every element of the space is bounded both
// above and below
func (b *Box) IsBounded() bool {
	for i := range b.low {
		if math.IsInf(b.low[i], -1) || math.IsInf(b.high[i], 1) {
			return false
		}
	}
	return true
}

// Sample takes a sample from within the space's bounds. Each element
// is sampled independently depending on its bounds:
//
//	[a, b]		Uniform(a, b)
//	[a, ∞)		a + Exponential(1)
//	(-∞, b]		b - Exponential(1)
//	(-∞, ∞)		Normal(0, 1)
//
// Integer dtypes take the floor of each sample, which is kept within
// the range of the dtype.
func (b *Box) Sample() *tensor.Dense {
	sample := make([]float64, len(b.low))
	dtypeRange, integer := tensorutils.IntegerRange(b.dtype)

	for i := range sample {
		low, high := b.low[i], b.high[i]
		boundedBelow := !math.IsInf(low, -1)
		boundedAbove := !math.IsInf(high, 1)

		var v float64
		switch {
		case boundedBelow && boundedAbove:
			if integer {
				high++
			}
			v = distuv.Uniform{Min: low, Max: high, Src: b.Source}.Rand()

		case boundedBelow:
			v = low + distuv.Exponential{Rate: 1, Src: b.Source}.Rand()

		case boundedAbove:
			v = high - distuv.Exponential{Rate: 1, Src: b.Source}.Rand()

		default:
			v = distuv.Normal{Mu: 0, Sigma: 1, Src: b.Source}.Rand()
		}
		if integer {
			v = floatutils.ClipInterval(v, dtypeRange)
		}

		// Rounding to the dtype may push a sample just outside of its
		// bounds, so clip after casting
		sample[i] = floatutils.Clip(tensorutils.Cast(b.dtype, v), b.low[i],
			b.high[i])
	}

	t, err := tensorutils.New(b.dtype, b.shape, sample)
	if err != nil {
		panic(fmt.Sprintf("sample: could not create sample: %v", err))
	}
	return t
}

// SampleValue takes a sample from within the space's bounds
func (b *Box) SampleValue() interface{} {
	return b.Sample()
}

// Contains returns whether x is in the space. The argument x must be a
// tensor.Tensor with the same shape and dtype as the space.
func (b *Box) Contains(x interface{}) bool {
	t, ok := asTensor(x)
	if !ok {
		return false
	}
	if t.Dtype() != b.dtype || !sameShape(t.Shape(), b.shape) {
		return false
	}

	data, ok := tensorutils.Float64s(t)
	if !ok || len(data) != len(b.low) {
		return false
	}
	for i := range data {
		if !floatutils.Within(data[i], r1.Interval{Min: b.low[i], Max: b.high[i]}) {
			return false
		}
	}
	return true
}

// Equals returns whether other is a Box with the same shape, dtype,
// and bounds
func (b *Box) Equals(other Space) bool {
	o, ok := other.(*Box)
	if !ok {
		return false
	}
	if o.dtype != b.dtype || !sameShape(o.shape, b.shape) {
		return false
	}
	for i := range b.low {
		if o.low[i] != b.low[i] || o.high[i] != b.high[i] {
			return false
		}
	}
	return true
}

func (b *Box) String() string {
	shape := make([]string, len(b.shape))
	for i, dim := range b.shape {
		shape[i] = fmt.Sprint(dim)
	}
	return fmt.Sprintf("Box(%v, %v, (%v), %v)", boundString(b.low),
		boundString(b.high), strings.Join(shape, ", "), b.dtype)
}

// boundString returns a compact representation of a bound, collapsing
// bounds where all elements are equal into a scalar
func boundString(bound []float64) string {
	for _, v := range bound[1:] {
		if v != bound[0] {
			return fmt.Sprint(bound)
		}
	}
	return fmt.Sprint(bound[0])
}
