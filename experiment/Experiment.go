// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment/envconfig"
	"github.com/samuelfneumann/gogymnasium/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to Trackers, which cache the data
// they track in RAM to be later saved to disk. The Save() method will
// then save all cached data to disk. This is usually performed after
// an experiment has been run. The Run() method will run all episodes
// until the episode or timestep limit is reached, and the RunEpisode()
// method will run a single episode.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns whether the experiment has finished
	RunEpisode(ctx context.Context) (bool, error)

	// Save all tracked data to disk
	Save() error

	// Close the environment of the experiment
	Close() error
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment
type Config struct {
	Type     Type             `json:"type"`
	Episodes uint             `json:"episodes"`
	MaxSteps uint             `json:"max_steps,omitempty"`
	EnvConf  envconfig.Config `json:"environment"`
}

// CreateExp creates the experiment described by the Config
func (c Config) CreateExp(seed uint64,
	t ...trackers.Tracker[*tensor.Dense]) (Experiment, error) {
	env, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	switch c.Type {
	case OnlineExp:
		exp, err := NewOnline(env, c.Episodes, c.MaxSteps, seed, t...)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("createExp: %w", err)
		}
		return exp, nil
	}

	env.Close()
	return nil, fmt.Errorf("createExp: no such experiment type %q", c.Type)
}
