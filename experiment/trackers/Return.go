package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// Return tracks and saves the episodic return in an experiment. When
// an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each episode in the experiment.
//
// Note: If an environment is wrapped by some wrapper which modifies
// rewards, then this Tracker tracks the modified rewards. For example,
// if an experiment is run on a wrappers.ClipReward environment wrapping
// CartPole, then this Tracker will track the cumulative clipped
// rewards. To track the return seen further down the chain of
// wrappers, place a wrappers.RecordEpisodeStatistics wrapper at that
// point and create the Tracker with its statistics key. The return
// recorded by that wrapper is then used instead.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return[O any] struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
	statsKey       string
}

// NewReturn creates and returns a new *Return Tracker which saves to
// filename. If filename is empty, data is only kept in memory. If
// statsKey is not empty, episode returns are read from the episode
// statistics recorded under statsKey whenever they exist.
func NewReturn[O any](filename, statsKey string) *Return[O] {
	return &Return[O]{
		lastTimeStep: -1,
		filename:     filename,
		statsKey:     statsKey,
	}
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker will store all rewards seen in the
// episode, and save the cumulative reward for that episode as the
// episodic return. When a new episode starts, this method will
// automatically detect this and start accumulating the rewards for this
// new episode separately from the rewards seen on previous episodes.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return[O]) Track(step ts.TimeStep[O]) {
	if step.First() {
		r.currentReturn = 0.0
		r.lastTimeStep = step.Number
		return
	}

	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}
	r.currentReturn += step.Reward
	r.lastTimeStep = step.Number

	if step.Last() {
		// Episode has ended, save the return and begin tracking the
		// return for a new episode
		episodeReturn := r.currentReturn
		if stats, ok := statistics(step, r.statsKey); ok {
			episodeReturn = stats.Rewards
		}
		r.episodeReturns = append(r.episodeReturns, episodeReturn)

		r.currentReturn = 0.0
		r.lastTimeStep = -1
	}
}

// Data returns the returns of all finished episodes
func (r *Return[O]) Data() []float64 {
	data := make([]float64, len(r.episodeReturns))
	copy(data, r.episodeReturns)
	return data
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return[O]) Save() error {
	if err := save(r.filename, r.episodeReturns); err != nil {
		return fmt.Errorf("return: %w", err)
	}
	return nil
}
