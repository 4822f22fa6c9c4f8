// Package tensorutils implements the small set of numeric array
// operations that spaces and environments need from gorgonia tensors:
// construction from values with a shape and dtype, reading elements
// back out, element-wise equality, and clamping.
package tensorutils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"gonum.org/v1/gonum/spatial/r1"
	"gorgonia.org/tensor"
)

// IsNumeric returns whether values of dtype dt can be converted to and
// from float64
func IsNumeric(dt tensor.Dtype) bool {
	return IsInteger(dt) || IsFloat(dt)
}

// IsFloat returns whether dt is a floating point dtype
func IsFloat(dt tensor.Dtype) bool {
	return dt == tensor.Float32 || dt == tensor.Float64
}

// IsInteger returns whether dt is a signed or unsigned integer dtype
func IsInteger(dt tensor.Dtype) bool {
	switch dt {
	case tensor.Int, tensor.Int8, tensor.Int16, tensor.Int32, tensor.Int64,
		tensor.Uint8, tensor.Uint16, tensor.Uint32, tensor.Uint64:
		return true
	}
	return false
}

// IntegerRange returns the interval of values that the integer dtype dt
// can hold. The bounds of 64-bit dtypes are the nearest float64 values
// inside the dtype's range. The second return value is false if dt is
// not an integer dtype.
func IntegerRange(dt tensor.Dtype) (r1.Interval, bool) {
	switch dt {
	case tensor.Int8:
		return r1.Interval{Min: math.MinInt8, Max: math.MaxInt8}, true
	case tensor.Int16:
		return r1.Interval{Min: math.MinInt16, Max: math.MaxInt16}, true
	case tensor.Int32:
		return r1.Interval{Min: math.MinInt32, Max: math.MaxInt32}, true
	case tensor.Int:
		if strconv.IntSize == 32 {
			return r1.Interval{Min: math.MinInt32, Max: math.MaxInt32}, true
		}
		fallthrough
	case tensor.Int64:
		return r1.Interval{
			Min: math.MinInt64,
			Max: math.Nextafter(math.MaxInt64, 0),
		}, true
	case tensor.Uint8:
		return r1.Interval{Min: 0, Max: math.MaxUint8}, true
	case tensor.Uint16:
		return r1.Interval{Min: 0, Max: math.MaxUint16}, true
	case tensor.Uint32:
		return r1.Interval{Min: 0, Max: math.MaxUint32}, true
	case tensor.Uint64:
		return r1.Interval{Min: 0, Max: math.Nextafter(math.MaxUint64, 0)},
			true
	}
	return r1.Interval{}, false
}

// Cast rounds v to the precision of dtype dt. Infinite values are kept
// infinite so that unbounded dimensions stay unbounded.
func Cast(dt tensor.Dtype, v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	switch {
	case dt == tensor.Float32:
		return float64(float32(v))
	case IsInteger(dt):
		return math.Floor(v)
	}
	return v
}

// New returns a new *tensor.Dense of dtype dt and shape shape holding
// values. The number of values must equal the number of elements
// described by shape. An empty shape gives a scalar tensor holding a
// single value.
func New(dt tensor.Dtype, shape []int, values []float64) (*tensor.Dense,
	error) {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	if len(values) != size {
		return nil, fmt.Errorf("new: shape %v requires %v values, got %v",
			shape, size, len(values))
	}

	var backing interface{}
	switch dt {
	case tensor.Float64:
		data := make([]float64, size)
		copy(data, values)
		backing = data
	case tensor.Float32:
		data := make([]float32, size)
		for i, v := range values {
			data[i] = float32(v)
		}
		backing = data
	case tensor.Int:
		data := make([]int, size)
		for i, v := range values {
			data[i] = int(v)
		}
		backing = data
	case tensor.Int8:
		data := make([]int8, size)
		for i, v := range values {
			data[i] = int8(v)
		}
		backing = data
	case tensor.Int16:
		data := make([]int16, size)
		for i, v := range values {
			data[i] = int16(v)
		}
		backing = data
	case tensor.Int32:
		data := make([]int32, size)
		for i, v := range values {
			data[i] = int32(v)
		}
		backing = data
	case tensor.Int64:
		data := make([]int64, size)
		for i, v := range values {
			data[i] = int64(v)
		}
		backing = data
	case tensor.Uint8:
		data := make([]uint8, size)
		for i, v := range values {
			data[i] = uint8(v)
		}
		backing = data
	case tensor.Uint16:
		data := make([]uint16, size)
		for i, v := range values {
			data[i] = uint16(v)
		}
		backing = data
	case tensor.Uint32:
		data := make([]uint32, size)
		for i, v := range values {
			data[i] = uint32(v)
		}
		backing = data
	case tensor.Uint64:
		data := make([]uint64, size)
		for i, v := range values {
			data[i] = uint64(v)
		}
		backing = data
	default:
		return nil, fmt.Errorf("new: unsupported dtype %v", dt)
	}

	if len(shape) == 0 {
		scalar := reflect.ValueOf(backing).Index(0).Interface()
		return tensor.New(tensor.FromScalar(scalar)), nil
	}
	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(backing)),
		nil
}

// Float64s reads the elements of t out in row-major order as float64s.
// The second return value is false if t is nil or does not hold a
// numeric dtype.
func Float64s(t tensor.Tensor) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	if dense, ok := t.(*tensor.Dense); ok && dense == nil {
		return nil, false
	}

	switch data := t.Data().(type) {
	case []float64:
		out := make([]float64, len(data))
		copy(out, data)
		return out, true
	case []float32:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []int:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []int8:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []int16:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []int32:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []int64:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []uint8:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []uint16:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []uint32:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true
	case []uint64:
		return convert(len(data), func(i int) float64 { return float64(data[i]) }), true

	// Scalar tensors return their single value instead of a slice
	case float64:
		return []float64{data}, true
	case float32:
		return []float64{float64(data)}, true
	case int:
		return []float64{float64(data)}, true
	case int8:
		return []float64{float64(data)}, true
	case int16:
		return []float64{float64(data)}, true
	case int32:
		return []float64{float64(data)}, true
	case int64:
		return []float64{float64(data)}, true
	case uint8:
		return []float64{float64(data)}, true
	case uint16:
		return []float64{float64(data)}, true
	case uint32:
		return []float64{float64(data)}, true
	case uint64:
		return []float64{float64(data)}, true
	}
	return nil, false
}

func convert(n int, at func(int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = at(i)
	}
	return out
}

// SameLayout returns whether a and b have equal shapes and dtypes
func SameLayout(a, b tensor.Tensor) bool {
	return a.Dtype() == b.Dtype() && tensor.Shape(a.Shape()).Eq(b.Shape())
}

// Equal returns whether a and b have the same shape, the same dtype,
// and equal elements.
func Equal(a, b tensor.Tensor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameLayout(a, b) {
		return false
	}

	aData, aOk := Float64s(a)
	bData, bOk := Float64s(b)
	if !aOk || !bOk {
		return reflect.DeepEqual(a.Data(), b.Data())
	}
	for i := range aData {
		if aData[i] != bData[i] {
			return false
		}
	}
	return true
}

// Clamp returns a copy of t with element i clamped to [low[i], high[i]].
// The returned tensor has the same shape and dtype as t.
func Clamp(t tensor.Tensor, low, high []float64) (*tensor.Dense, error) {
	data, ok := Float64s(t)
	if !ok {
		return nil, fmt.Errorf("clamp: cannot clamp dtype %v", t.Dtype())
	}
	if len(low) != len(data) || len(high) != len(data) {
		return nil, fmt.Errorf("clamp: bounds must have %v elements, got "+
			"(%v, %v)", len(data), len(low), len(high))
	}

	for i := range data {
		data[i] = math.Max(math.Min(data[i], high[i]), low[i])
	}
	return New(t.Dtype(), t.Shape(), data)
}

// Fill returns a slice of n copies of v
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
