// Package cabdriver implements a Markov decision process for a cab
// driver who, at each decision, either accepts one of the ride requests
// offered at their location or stays idle, with the goal of maximizing
// earnings net of fuel and time costs.
//
// A state is the driver's location together with the hour of the day
// and the day of the week. Actions are either Idle, which moves the
// clock forward by one hour, or a Ride from a pickup location to a
// drop location. Ride requests arrive at each location according to a
// Poisson distribution whose mean depends on the location, and travel
// times between locations are read from an externally supplied
// TravelTimes table.
//
// CabDriver holds the immutable state and action spaces and implements
// the request sampler, the transition function, and the reward
// function. Discrete wraps a CabDriver into an environment.Environment
// which tracks the current state between steps.
package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	"golang.org/x/exp/rand"
)

// CabDriver implements the cab driver MDP. CabDriver does not track a
// current state; callers thread the next state returned by Step into
// the following call.
//
// A CabDriver owns its random source and is not safe for concurrent
// use. Parallel rollouts should each construct their own CabDriver.
type CabDriver struct {
	config  Config
	actions []Action
	index   map[Action]int
	states  []State
	initial State

	seed uint64
	src  rand.Source
}

// New returns a new CabDriver with configuration c. The seed seeds
// both the initial state and the request sampler.
func New(c Config, seed uint64) (*CabDriver, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	rates := make([]float64, len(c.RequestRates))
	copy(rates, c.RequestRates)
	c.RequestRates = rates

	// Index 0 is reserved for the Idle action
	actions := make([]Action, 0, c.Rides()+1)
	actions = append(actions, Idle())
	for i := 0; i < c.Locations; i++ {
		for j := 0; j < c.Locations; j++ {
			if i == j {
				continue
			}
			actions = append(actions, Action{RideKind, i, j})
		}
	}

	index := make(map[Action]int, len(actions))
	for i, a := range actions {
		index[a] = i
	}

	states := make([]State, 0, c.Locations*c.Hours*c.Days)
	for x := 0; x < c.Locations; x++ {
		for t := 0; t < c.Hours; t++ {
			for d := 0; d < c.Days; d++ {
				states = append(states, State{x, t, d})
			}
		}
	}

	cab := &CabDriver{
		config:  c,
		actions: actions,
		index:   index,
		states:  states,
		seed:    seed,
		src:     rand.NewSource(seed),
	}

	starter, err := cab.NewStarter(seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create starter: %v", err)
	}
	cab.initial, err = stateFromVec(starter.Start())
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return cab, nil
}

// NewStarter returns a Starter which samples states uniformly from
// the state space. Starting state vectors are (location, hour, day).
func (c *CabDriver) NewStarter(seed uint64) (*environment.CategoricalStarter,
	error) {
	bounds := []int{c.config.Locations, c.config.Hours, c.config.Days}
	return environment.NewCategoricalStarter(bounds, seed)
}

// Config returns the configuration of the CabDriver
func (c *CabDriver) Config() Config {
	config := c.config
	config.RequestRates = make([]float64, len(c.config.RequestRates))
	copy(config.RequestRates, c.config.RequestRates)
	return config
}

// ActionSpace returns all actions. Index 0 is Idle, followed by every
// Ride (i, j) with i ≠ j ordered by i and then by j.
func (c *CabDriver) ActionSpace() []Action {
	actions := make([]Action, len(c.actions))
	copy(actions, c.actions)
	return actions
}

// Action returns the action at index i of the action space
func (c *CabDriver) Action(i int) (Action, error) {
	if i < 0 || i >= len(c.actions) {
		return Action{}, fmt.Errorf("action: %w: index %d ∉ [0, %d)",
			ErrInvalidAction, i, len(c.actions))
	}
	return c.actions[i], nil
}

// ActionIndex returns the index of a in the action space
func (c *CabDriver) ActionIndex(a Action) (int, error) {
	i, ok := c.index[a]
	if !ok {
		return 0, fmt.Errorf("actionIndex: %w: %v not in action space",
			ErrInvalidAction, a)
	}
	return i, nil
}

// StateSpace returns all states ordered by location, then hour, then
// day
func (c *CabDriver) StateSpace() []State {
	states := make([]State, len(c.states))
	copy(states, c.states)
	return states
}

// InitialState returns the state drawn uniformly from the state space
// when the CabDriver was created
func (c *CabDriver) InitialState() State {
	return c.initial
}

// Seed returns the seed the CabDriver was created with
func (c *CabDriver) Seed() uint64 {
	return c.seed
}

func (c *CabDriver) String() string {
	return fmt.Sprintf("CabDriver  |  Locations: %d  |  Hours: %d  |  "+
		"Days: %d  |  Actions: %d  |  States: %d", c.config.Locations,
		c.config.Hours, c.config.Days, len(c.actions), len(c.states))
}
