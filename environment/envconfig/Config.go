// Package envconfig provides configuration structs for building
// environments together with the chain of wrappers around them.
// Environment configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"gorgonia.org/tensor"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/classiccontrol/cartpole"
	"github.com/samuelfneumann/gogymnasium/environment/wrappers"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	CartPole EnvName = "CartPole"
)

// WrapperName stores the name of wrappers that can be configured with
// this package
type WrapperName string

// Wrappers available for configuration
const (
	TimeLimit               WrapperName = "TimeLimit"
	ClipReward              WrapperName = "ClipReward"
	OrderEnforcing          WrapperName = "OrderEnforcing"
	RecordEpisodeStatistics WrapperName = "RecordEpisodeStatistics"
	Autoreset               WrapperName = "Autoreset"
	AverageReward           WrapperName = "AverageReward"
)

// Wrapper configures a single wrapper. Only the fields used by the
// named wrapper are read:
//
//	Wrapper					Fields
//	TimeLimit				MaxEpisodeSteps
//	ClipReward				MinReward, MaxReward
//	OrderEnforcing			DisableRenderOrderEnforcing
//	RecordEpisodeStatistics	StatsKey, BufferLength
//	Autoreset
//	AverageReward			InitialAverage, LearningRate
type Wrapper struct {
	Name WrapperName `json:"name"`

	MaxEpisodeSteps             int      `json:"max_episode_steps,omitempty"`
	MinReward                   *float64 `json:"min_reward,omitempty"`
	MaxReward                   *float64 `json:"max_reward,omitempty"`
	DisableRenderOrderEnforcing bool     `json:"disable_render_order_enforcing,omitempty"`
	StatsKey                    string   `json:"stats_key,omitempty"`
	BufferLength                int      `json:"buffer_length,omitempty"`
	InitialAverage              float64  `json:"initial_average,omitempty"`
	LearningRate                float64  `json:"learning_rate,omitempty"`
}

// Config implements a specific configuration of an environment and
// the wrappers around it. Wrappers are applied in order, so that the
// first wrapper is the innermost.
type Config struct {
	Environment       EnvName        `json:"environment"`
	RenderMode        env.RenderMode `json:"render_mode,omitempty"`
	SuttonBartoReward bool           `json:"sutton_barto_reward,omitempty"`
	Wrappers          []Wrapper      `json:"wrappers,omitempty"`
}

// Load reads a JSON Config from filename
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode %v: %w", filename,
			err)
	}
	return c, nil
}

// Save writes the Config to filename as JSON
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Create returns the environment described by the Config, wrapped in
// each configured wrapper. Any opts are applied to the environment
// after the options described by the Config.
func (c Config) Create(seed uint64, opts ...cartpole.Option) (
	env.Environment[*tensor.Dense, int], error) {
	if !c.RenderMode.Valid() {
		return nil, fmt.Errorf("create: unknown render mode %q", c.RenderMode)
	}

	var e env.Environment[*tensor.Dense, int]
	switch c.Environment {
	case CartPole:
		var err error
		e, err = CreateCartPole(c, seed, opts...)
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}

	default:
		return nil, fmt.Errorf("create: cannot create environment %q, no "+
			"such environment", c.Environment)
	}

	for i, w := range c.Wrappers {
		var err error
		e, err = Wrap(e, w)
		if err != nil {
			return nil, fmt.Errorf("create: wrapper %v: %w", i, err)
		}
	}
	return e, nil
}

// CreateCartPole is a factory for creating the CartPole environment
// with default physical parameters
func CreateCartPole(c Config, seed uint64, opts ...cartpole.Option) (
	*cartpole.CartPole, error) {
	options := []cartpole.Option{
		cartpole.WithSeed(seed),
		cartpole.WithRenderMode(c.RenderMode),
	}
	if c.SuttonBartoReward {
		options = append(options, cartpole.WithSuttonBartoReward())
	}

	return cartpole.New(append(options, opts...)...)
}

// Wrap wraps e in the wrapper described by w
func Wrap[O, A any](e env.Environment[O, A], w Wrapper) (
	env.Environment[O, A], error) {
	var wrapped env.Environment[O, A]
	var err error

	switch w.Name {
	case TimeLimit:
		wrapped, err = wrappers.NewTimeLimit(e, w.MaxEpisodeSteps)

	case ClipReward:
		wrapped, err = wrappers.NewClipReward(e, w.MinReward, w.MaxReward)

	case OrderEnforcing:
		wrapped, err = wrappers.NewOrderEnforcing(e,
			w.DisableRenderOrderEnforcing)

	case RecordEpisodeStatistics:
		if w.BufferLength == 0 {
			wrapped, err = wrappers.NewRecordEpisodeStatistics(e, w.StatsKey)
		} else {
			wrapped, err = wrappers.NewRecordEpisodeStatisticsWithBuffer(e,
				w.StatsKey, w.BufferLength)
		}

	case Autoreset:
		wrapped, err = wrappers.NewAutoreset(e)

	case AverageReward:
		wrapped, err = wrappers.NewAverageReward(e, w.InitialAverage,
			w.LearningRate)

	default:
		return nil, fmt.Errorf("wrap: no such wrapper %q", w.Name)
	}

	if err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	return wrapped, nil
}
