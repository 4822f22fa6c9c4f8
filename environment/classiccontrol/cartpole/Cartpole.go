// Package cartpole implements the Cartpole classic control environment
package cartpole

import (
	"fmt"
	"log"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gorgonia.org/tensor"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/render"
	"github.com/samuelfneumann/gogymnasium/spaces"
	ts "github.com/samuelfneumann/gogymnasium/timestep"
	"github.com/samuelfneumann/gogymnasium/utils/tensorutils"
)

const (
	// Physical constants
	Gravity        float64 = 9.8
	CartMass       float64 = 1.0
	PoleMass       float64 = 0.1
	TotalMass      float64 = CartMass + PoleMass
	HalfPoleLength float64 = 0.5 // half of pole length
	PoleMassLength float64 = PoleMass * HalfPoleLength
	ForceMag       float64 = 10.0 // Magnification of force applied
	Tau            float64 = 0.02 // seconds between state updates

	// Episodes terminate when the cart position or pole angle leave
	// these (+/-) thresholds
	XThreshold            float64 = 2.4
	ThetaThresholdRadians float64 = 12 * 2 * math.Pi / 360

	// Default (+/-) bound of each state feature at the start of an
	// episode
	StartBound float64 = 0.05

	// Rendering
	ScreenWidth  int = 600
	ScreenHeight int = 400
	FrameRate    int = 60

	// Number of state features
	ObservationDims int = 4
)

// CartPole implements the classic control environment Cartpole. In
// this environment, a pole is attached by an un-actuated joint to a
// cart, which moves along a frictionless track. The pole is placed
// upright on the cart and the goal is to balance the pole by applying
// forces in the left and right direction on the cart.
//
// Observations are float32 tensors of shape (4) holding the cart's x
// position and velocity, as well as the pole's angle from the positive
// y-axis and the pole's angular velocity.
//
// Actions are discrete and consist of the direction of the fixed force
// applied to the cart:
//
//	Action	Meaning
//	  0		Push cart to the left
//	  1		Push cart to the right
//
// Each state feature starts uniformly in [-0.05, 0.05]. Episodes
// terminate when the cart position leaves (-2.4, 2.4) or the pole angle
// leaves (-12°, 12°). The environment itself never truncates episodes,
// use a TimeLimit wrapper for that.
//
// A reward of +1 is given for every step which does not terminate the
// episode and 0 for a step that does. With the Sutton and Barto reward,
// a reward of 0 is given for every step which does not terminate the
// episode and -1 for a step that does.
type CartPole struct {
	env.Base[*tensor.Dense, int]
	starter *env.UniformStarter
	limits  *env.IntervalLimit

	state                 *mat.VecDense // nil until the first reset
	stepsBeyondTerminated int           // -1 while the episode is running
	lastStep              ts.TimeStep[*tensor.Dense]

	suttonBartoReward bool
	seed              uint64

	canvas     *render.Canvas
	surface    render.Surface
	newSurface func() (render.Surface, error)
}

// New constructs a new CartPole environment
func New(opts ...Option) (*CartPole, error) {
	c := &CartPole{
		stepsBeyondTerminated: -1,
		seed:                  uint64(time.Now().UnixNano()),
		newSurface:            defaultSurface,
	}

	renderMode := env.NoRender
	for _, opt := range opts {
		opt(c, &renderMode)
	}

	actionSpace, err := spaces.NewDiscrete(2)
	if err != nil {
		return nil, fmt.Errorf("new: could not create action space: %v", err)
	}
	observationSpace, err := spaces.NewBox(math.Inf(-1), math.Inf(1),
		[]int{ObservationDims}, tensor.Float32)
	if err != nil {
		return nil, fmt.Errorf("new: could not create observation space: %v",
			err)
	}

	c.Base, err = env.NewBase[*tensor.Dense, int](actionSpace,
		observationSpace, renderMode)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	c.starter, err = env.NewUniformStarter(startBounds(-StartBound,
		StartBound), c.seed)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	c.limits, err = env.NewIntervalLimit(
		[]r1.Interval{
			{Min: -XThreshold, Max: XThreshold},
			{Min: -ThetaThresholdRadians, Max: ThetaThresholdRadians},
		},
		[]int{0, 2},
	)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	c.SeedSpaces(c.seed)
	return c, nil
}

// Reset resets the environment and returns a starting state drawn from
// the environment's starter. Besides "seed", Reset accepts the "low"
// and "high" options, which change the interval from which each state
// feature is drawn for this episode.
func (c *CartPole) Reset(opts env.Options) (ts.TimeStep[*tensor.Dense], error) {
	seed, ok, err := opts.Seed()
	if err != nil {
		return ts.TimeStep[*tensor.Dense]{}, fmt.Errorf("reset: %v", err)
	}
	if ok {
		c.seed = seed
		c.starter.Seed(seed)
		c.SeedSpaces(seed)
	}

	low, high, err := resetBounds(opts)
	if err != nil {
		return ts.TimeStep[*tensor.Dense]{}, fmt.Errorf("reset: %v", err)
	}
	if err := c.starter.SetBounds(startBounds(low, high)); err != nil {
		return ts.TimeStep[*tensor.Dense]{}, fmt.Errorf("reset: %v", err)
	}

	// Starting states are drawn at float32 precision so that the
	// internal state matches the observation
	state := c.starter.Start()
	for i := 0; i < state.Len(); i++ {
		state.SetVec(i, float64(float32(state.AtVec(i))))
	}
	c.state = state
	c.stepsBeyondTerminated = -1

	obs, err := c.observation()
	if err != nil {
		return ts.TimeStep[*tensor.Dense]{}, fmt.Errorf("reset: %v", err)
	}

	c.lastStep = ts.New(obs, nil)
	return c.lastStep, nil
}

// Step takes one environmental step given action a and returns the
// next timestep. Stepping before the first call to Reset or with an
// action outside of the action space returns an error.
func (c *CartPole) Step(a int) (ts.TimeStep[*tensor.Dense], error) {
	if c.state == nil {
		return ts.TimeStep[*tensor.Dense]{}, &env.EnvironmentError{
			Op:  "step",
			Err: env.ErrStateUndefined,
		}
	}
	if !c.ActionSpace().Contains(a) {
		return ts.TimeStep[*tensor.Dense]{}, &env.EnvironmentError{
			Op: "step",
			Err: fmt.Errorf("%w %v ∉ %v", env.ErrInvalidAction, a,
				c.ActionSpace()),
		}
	}

	c.state = nextState(c.state, a)
	terminated := c.limits.Exceeded(c.state)

	var reward float64
	switch {
	case !terminated:
		reward = c.stepReward()

	case c.stepsBeyondTerminated < 0:
		// Pole just fell
		c.stepsBeyondTerminated = 0
		reward = c.terminalReward()

	default:
		if c.stepsBeyondTerminated == 0 {
			log.Printf("step: you are calling step() even though this " +
				"environment has already returned terminated = true. You " +
				"should always call reset() once you receive " +
				"terminated = true -- any further steps are undefined " +
				"behavior")
		}
		c.stepsBeyondTerminated++
		reward = c.terminalReward()
	}

	obs, err := c.observation()
	if err != nil {
		return ts.TimeStep[*tensor.Dense]{}, fmt.Errorf("step: %v", err)
	}
	c.lastStep = ts.Next(c.lastStep, obs, reward, terminated, false, nil)

	if c.RenderMode() == env.Human {
		if c.canvas != nil {
			if _, err := c.Render(); err != nil {
				return c.lastStep, fmt.Errorf("step: %v", err)
			}
		}
		time.Sleep(time.Second / time.Duration(FrameRate))
	}

	return c.lastStep, nil
}

// nextState returns the state following state when taking action a,
// using Euler integration
func nextState(state *mat.VecDense, a int) *mat.VecDense {
	x, xDot := state.AtVec(0), state.AtVec(1)
	th, thDot := state.AtVec(2), state.AtVec(3)

	force := -ForceMag
	if a == 1 {
		force = ForceMag
	}

	// Calculate physical variables to determine next state
	cosTheta := math.Cos(th)
	sinTheta := math.Sin(th)

	temp := (force + PoleMassLength*thDot*thDot*sinTheta) / TotalMass
	thAcc := (Gravity*sinTheta - cosTheta*temp) / (HalfPoleLength *
		(4.0/3.0 - PoleMass*cosTheta*cosTheta/TotalMass))
	xAcc := temp - PoleMassLength*thAcc*cosTheta/TotalMass

	// Update state variables using Euler kinematic integration
	x += Tau * xDot
	xDot += Tau * xAcc
	th += Tau * thDot
	thDot += Tau * thAcc

	return mat.NewVecDense(ObservationDims, []float64{x, xDot, th, thDot})
}

// stepReward returns the reward for a step which does not terminate
// the episode
func (c *CartPole) stepReward() float64 {
	if c.suttonBartoReward {
		return 0.0
	}
	return 1.0
}

// terminalReward returns the reward for a step which terminates the
// episode
func (c *CartPole) terminalReward() float64 {
	if c.suttonBartoReward {
		return -1.0
	}
	return 0.0
}

// observation returns the current state as an observation
func (c *CartPole) observation() (*tensor.Dense, error) {
	return tensorutils.New(tensor.Float32, []int{ObservationDims},
		c.state.RawVector().Data)
}

// State returns a copy of the current state of the environment, or nil
// if the environment has not been reset
func (c *CartPole) State() []float64 {
	if c.state == nil {
		return nil
	}
	state := make([]float64, c.state.Len())
	copy(state, c.state.RawVector().Data)
	return state
}

// Unwrapped returns the environment itself
func (c *CartPole) Unwrapped() env.Environment[*tensor.Dense, int] {
	return c
}

func (c *CartPole) String() string {
	if c.state == nil {
		return "CartPole"
	}

	msg := "CartPole  |  Position: %v  | Speed: %v  |  Angle: %v" +
		"  |  Angular Velocity: %v"

	position, speed := c.state.AtVec(0), c.state.AtVec(1)
	angle, velocity := c.state.AtVec(2), c.state.AtVec(3)

	return fmt.Sprintf(msg, position, speed, angle, velocity)
}

// resetBounds returns the interval from which each state feature
// should be drawn at the start of an episode
func resetBounds(opts env.Options) (float64, float64, error) {
	low, ok, err := opts.Float64("low")
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		low = -StartBound
	}

	high, ok, err := opts.Float64("high")
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		high = StartBound
	}

	if low > high {
		return 0, 0, fmt.Errorf("lower bound (%v) must be smaller than "+
			"upper bound (%v)", low, high)
	}
	return low, high, nil
}

func startBounds(low, high float64) []r1.Interval {
	bounds := make([]r1.Interval, ObservationDims)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: low, Max: high}
	}
	return bounds
}
