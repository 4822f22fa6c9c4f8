package experiment

import (
	"context"
	"fmt"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/experiment/trackers"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
)

// Online is an Experiment that runs a uniform random policy online,
// sampling each action from the action space of the environment.
type Online[O, A any] struct {
	env          env.Environment[O, A]
	maxEpisodes  uint
	maxSteps     uint
	episodes     uint
	currentSteps uint
	seed         uint64
	trackers     []trackers.Tracker[O]
}

// NewOnline creates and returns a new online experiment on a given
// environment. The experiment runs for maxEpisodes episodes or
// maxSteps timesteps, whichever comes first. A limit of 0 is no limit,
// but at least one limit must be set. The t parameter is a slice of
// trackers.Tracker which determine what data is saved.
//
// The environment is reset with seed on the first episode, and the
// action space is seeded with seed.
func NewOnline[O, A any](e env.Environment[O, A], maxEpisodes,
	maxSteps uint, seed uint64, t ...trackers.Tracker[O]) (*Online[O, A],
	error) {
	if e == nil {
		return nil, fmt.Errorf("newOnline: cannot run a nil environment")
	}
	if maxEpisodes == 0 && maxSteps == 0 {
		return nil, fmt.Errorf("newOnline: at least one of maxEpisodes and " +
			"maxSteps must be positive")
	}

	e.ActionSpace().Seed(seed)
	return &Online[O, A]{
		env:         e,
		maxEpisodes: maxEpisodes,
		maxSteps:    maxSteps,
		seed:        seed,
		trackers:    t,
	}, nil
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online[O, A]) Register(t trackers.Tracker[O]) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether the experiment has finished. In human render mode, the
// environment is rendered after each reset.
func (o *Online[O, A]) RunEpisode(ctx context.Context) (bool, error) {
	if o.done() {
		return true, nil
	}

	var opts env.Options
	if o.episodes == 0 {
		opts = env.Options{"seed": o.seed}
	}
	step, err := o.env.Reset(opts)
	if err != nil {
		return false, fmt.Errorf("runEpisode: %w", err)
	}
	o.track(step)

	if o.env.RenderMode() == env.Human {
		if _, err := o.env.Render(); err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
	}

	// Run the next timestep
	for !step.Last() && !o.stepLimitReached() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		o.currentSteps++

		step, err = o.env.Step(o.env.ActionSpace().Sample())
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		o.track(step)
	}

	if step.Last() {
		o.episodes++
	}
	return o.done(), nil
}

// Run runs the entire experiment
func (o *Online[O, A]) Run(ctx context.Context) error {
	for {
		done, err := o.RunEpisode(ctx)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		if done {
			return nil
		}
	}
}

// Episodes returns the number of finished episodes
func (o *Online[O, A]) Episodes() uint {
	return o.episodes
}

// Steps returns the number of timesteps taken
func (o *Online[O, A]) Steps() uint {
	return o.currentSteps
}

// Save saves the data cached by the Trackers to disk
func (o *Online[O, A]) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// Close closes the environment
func (o *Online[O, A]) Close() error {
	return o.env.Close()
}

func (o *Online[O, A]) done() bool {
	return (o.maxEpisodes > 0 && o.episodes >= o.maxEpisodes) ||
		o.stepLimitReached()
}

func (o *Online[O, A]) stepLimitReached() bool {
	return o.maxSteps > 0 && o.currentSteps >= o.maxSteps
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online[O, A]) track(t ts.TimeStep[O]) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
