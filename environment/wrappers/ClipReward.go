package wrappers

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/utils/floatutils"
)

// ClipReward wraps an environment and clips its rewards to
// [minReward, maxReward]. Either bound may be nil, in which case
// rewards are only clipped on the other side.
type ClipReward[O, A any] struct {
	*RewardWrapper[O, A]

	minReward, maxReward *float64
}

// NewClipReward returns a new ClipReward wrapper. At least one of
// minReward and maxReward must not be nil.
func NewClipReward[O, A any](env environment.Environment[O, A], minReward,
	maxReward *float64) (*ClipReward[O, A], error) {
	if minReward == nil && maxReward == nil {
		return nil, fmt.Errorf("newClipReward: both minReward and " +
			"maxReward cannot be nil")
	}
	if (minReward != nil && math.IsNaN(*minReward)) ||
		(maxReward != nil && math.IsNaN(*maxReward)) {
		return nil, fmt.Errorf("newClipReward: reward bounds cannot be NaN")
	}
	if minReward != nil && maxReward != nil && *maxReward < *minReward {
		return nil, fmt.Errorf("newClipReward: min reward (%v) must be "+
			"smaller than max reward (%v)", *minReward, *maxReward)
	}

	c := &ClipReward[O, A]{}
	if minReward != nil {
		c.minReward = floatutils.Ptr(*minReward)
	}
	if maxReward != nil {
		c.maxReward = floatutils.Ptr(*maxReward)
	}

	w, err := NewRewardWrapper(env, c.clip)
	if err != nil {
		return nil, fmt.Errorf("newClipReward: %w", err)
	}
	c.RewardWrapper = w

	return c, nil
}

func (c *ClipReward[O, A]) clip(reward float64) float64 {
	return floatutils.ClipOptional(reward, c.minReward, c.maxReward)
}

func (c *ClipReward[O, A]) String() string {
	return fmt.Sprintf("ClipReward(%v, %v)(%v)", bound(c.minReward),
		bound(c.maxReward), c.Env())
}

func bound(b *float64) string {
	if b == nil {
		return "nil"
	}
	return fmt.Sprint(*b)
}
