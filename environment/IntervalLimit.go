package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// IntervalLimit detects when a single feature in a state vector leaves
// some interval. Environments use it to detect terminal states.
type IntervalLimit struct {
	intervals []r1.Interval
	indices   []int
}

// NewIntervalLimit creates and returns a new interval limit, where
// feature obsIndices[i] must stay within limits[i]
func NewIntervalLimit(limits []r1.Interval, obsIndices []int) (*IntervalLimit,
	error) {
	if len(limits) != len(obsIndices) {
		return nil, fmt.Errorf("newIntervalLimit: limits should have same "+
			"length as observation indices (%v != %v)", len(limits),
			len(obsIndices))
	}
	for _, index := range obsIndices {
		if index < 0 {
			return nil, fmt.Errorf("newIntervalLimit: illegal observation "+
				"index %v", index)
		}
	}

	return &IntervalLimit{limits, obsIndices}, nil
}

// Exceeded returns whether any limited feature of the state has left
// its interval. Interval bounds are inclusive.
func (i *IntervalLimit) Exceeded(state mat.Vector) bool {
	for index := range i.indices {
		featureIndex := i.indices[index]
		interval := i.intervals[index]

		if state.AtVec(featureIndex) > interval.Max ||
			state.AtVec(featureIndex) < interval.Min {
			return true
		}
	}
	return false
}
