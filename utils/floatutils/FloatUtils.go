// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// ClipOptional clips value to the bounds which are non-nil. A nil
// bound leaves that side of value unclipped, so that passing a nil min
// and a nil max returns value unchanged.
func ClipOptional(value float64, min, max *float64) float64 {
	if min != nil {
		value = math.Max(value, *min)
	}
	if max != nil {
		value = math.Min(value, *max)
	}
	return value
}

// Within returns whether value lies in the closed interval. Infinite
// interval endpoints are always satisfied on their side, and NaN is
// never within any interval.
func Within(value float64, interval r1.Interval) bool {
	if math.IsNaN(value) {
		return false
	}
	return (math.IsInf(interval.Min, -1) || value >= interval.Min) &&
		(math.IsInf(interval.Max, 1) || value <= interval.Max)
}

// Ptr returns a pointer to a copy of f. It is useful for constructing
// optional bounds inline.
func Ptr(f float64) *float64 {
	return &f
}
