package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength[O any] struct {
	episodeLengths []float64
	filename       string
	statsKey       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename. If statsKey is not
// empty, lengths are read from the episode statistics recorded under
// statsKey whenever they exist.
func NewEpisodeLength[O any](filename, statsKey string) *EpisodeLength[O] {
	return &EpisodeLength[O]{filename: filename, statsKey: statsKey}
}

// Track tracks the episode lengths in an experiment. When this function
// is called, it caches the episode length if the timestep passed to it
// is the last timestep in the episode.
func (e *EpisodeLength[O]) Track(t ts.TimeStep[O]) {
	if !t.Last() {
		return
	}

	length := t.Number
	if stats, ok := statistics(t, e.statsKey); ok {
		length = stats.Length
	}
	e.episodeLengths = append(e.episodeLengths, float64(length))
}

// Data returns the lengths of all finished episodes
func (e *EpisodeLength[O]) Data() []float64 {
	data := make([]float64, len(e.episodeLengths))
	copy(data, e.episodeLengths)
	return data
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength[O]) Save() error {
	if err := save(e.filename, e.episodeLengths); err != nil {
		return fmt.Errorf("episodeLength: %w", err)
	}
	return nil
}
