package cartpole

import (
	"os"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/render"
)

// Option configures a CartPole environment
type Option func(*CartPole, *env.RenderMode)

// WithSuttonBartoReward uses the reward scheme of Sutton and Barto,
// giving 0 reward on each step and -1 reward on termination
func WithSuttonBartoReward() Option {
	return func(c *CartPole, _ *env.RenderMode) {
		c.suttonBartoReward = true
	}
}

// WithRenderMode sets the render mode of the environment
func WithRenderMode(mode env.RenderMode) Option {
	return func(_ *CartPole, r *env.RenderMode) {
		*r = mode
	}
}

// WithSurface sets the function used to create the surface that frames
// are presented on in human render mode. By default, frames are
// presented on the terminal.
func WithSurface(newSurface func() (render.Surface, error)) Option {
	return func(c *CartPole, _ *env.RenderMode) {
		c.newSurface = newSurface
	}
}

// WithSeed seeds the environment's starting states and spaces
func WithSeed(seed uint64) Option {
	return func(c *CartPole, _ *env.RenderMode) {
		c.seed = seed
	}
}

func defaultSurface() (render.Surface, error) {
	return render.NewTerminal(os.Stdout, 80, 24)
}
