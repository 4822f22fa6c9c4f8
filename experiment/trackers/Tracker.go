// Package trackers implements Trackers, which track and save data in an
// experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/gogymnasium/environment/wrappers"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker[O any] interface {
	Track(t ts.TimeStep[O])

	// Data returns the data tracked so far
	Data() []float64

	// Save saves the tracked data to disk
	Save() error
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}

// save encodes data to filename. Nothing is saved if filename is
// empty.
func save(filename string, data []float64) error {
	if filename == "" {
		return nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("save: could not encode data: %w", err)
	}
	return file.Close()
}

// statistics returns the episode statistics recorded under key in the
// info of step, if any
func statistics[O any](step ts.TimeStep[O], key string) (
	wrappers.EpisodeStatistics, bool) {
	if key == "" {
		return wrappers.EpisodeStatistics{}, false
	}
	stats, ok := step.Info[key].(wrappers.EpisodeStatistics)
	return stats, ok
}
