package cabdriver

import (
	"errors"
	"fmt"
	"math"

	"github.com/samuelfneumann/cabdriver/environment"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

// ActionDims is the dimension of actions taken by Discrete
const ActionDims int = 1

// ErrEpisodeEnded is returned when stepping an environment whose
// episode has ended without first resetting it
var ErrEpisodeEnded = errors.New("episode has ended")

// Discrete implements the cab driver environment with discrete actions.
//
// Observations are the one-hot encodings of states returned by
// CabDriver.Encode. Actions are 1-dimensional and hold the index of an
// action in the CabDriver's action space:
//
//	Action	Meaning
//	  0		Idle for one hour
//	  i > 0	Accept the i-th ride of the action space
//
// Only the actions offered on the current step, as returned by
// Offered, are legal. Each TimeStep records the hours the action took
// in its Duration field and the hours elapsed in the episode in its
// Clock field.
//
// Discrete implements the environment.Environment interface
type Discrete struct {
	*Earnings
	cab      *CabDriver
	travel   *TravelTimes
	discount float64

	state    State
	offered  Requests
	lastStep ts.TimeStep
}

var _ environment.Environment = &Discrete{}

// NewDiscrete creates a new Discrete cab driver environment with the
// argument task and travel times, and returns it along with the first
// TimeStep of the first episode
func NewDiscrete(cab *CabDriver, task *Earnings, tt *TravelTimes,
	discount float64) (*Discrete, ts.TimeStep, error) {
	d := &Discrete{
		Earnings: task,
		cab:      cab,
		travel:   tt,
		discount: discount,
	}

	step, err := d.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDiscrete: %w", err)
	}
	return d, step, nil
}

// Reset resets the environment to a starting state drawn from the
// task's Starter and samples the first requests of the episode
func (d *Discrete) Reset() (ts.TimeStep, error) {
	start, err := stateFromVec(d.Start())
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	obs, err := d.cab.Encode(start)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	offered, err := d.cab.Requests(start)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	d.state = start
	d.offered = offered
	d.lastStep = ts.New(ts.First, 0, d.discount, obs, 0, 0, 0)

	return d.lastStep, nil
}

// Step takes one environmental step given action a and returns the
// next TimeStep and whether or not the episode has ended. The action
// must be one of the actions currently offered.
func (d *Discrete) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if d.lastStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", ErrEpisodeEnded)
	}
	if a.Len() != ActionDims {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: actions must be "+
			"%d-dimensional", ErrInvalidAction, ActionDims)
	}

	value := a.AtVec(0)
	if value != math.Trunc(value) {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: action %v is "+
			"not an action index", ErrInvalidAction, value)
	}

	index := int(value)
	if !d.offered.Offers(index) {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: %d ∉ %v",
			ErrActionNotOffered, index, d.offered.Indices)
	}
	action := d.cab.actions[index]

	outcome, err := d.cab.NextState(d.state, action, d.travel)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	obs, err := d.cab.Encode(outcome.Next)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	reward := d.cab.Reward(outcome.RideTime, outcome.TotalTime)
	nextStep := ts.New(ts.Mid, reward, d.discount, obs,
		d.lastStep.Number+1, outcome.TotalTime,
		d.lastStep.Clock+outcome.TotalTime)

	// Check if the step is the last in the episode and adjust step type
	// if necessary
	d.End(&nextStep)

	d.state = outcome.Next
	d.lastStep = nextStep

	if nextStep.Last() {
		d.offered = Requests{}
	} else {
		d.offered, err = d.cab.Requests(d.state)
		if err != nil {
			return nextStep, false, fmt.Errorf("step: %w", err)
		}
	}

	return nextStep, nextStep.Last(), nil
}

// Offered returns the actions offered on the current step
func (d *Discrete) Offered() Requests {
	indices := make([]int, len(d.offered.Indices))
	copy(indices, d.offered.Indices)
	actions := make([]Action, len(d.offered.Actions))
	copy(actions, d.offered.Actions)

	return Requests{indices, actions}
}

// State returns the current state of the environment
func (d *Discrete) State() State {
	return d.state
}

// CurrentTimeStep returns the last TimeStep that occurred in the
// environment
func (d *Discrete) CurrentTimeStep() ts.TimeStep {
	return d.lastStep
}

// CabDriver returns the underlying CabDriver
func (d *Discrete) CabDriver() *CabDriver {
	return d.cab
}

// TravelTimes returns the travel times used by the environment
func (d *Discrete) TravelTimes() *TravelTimes {
	return d.travel
}

// ActionSpec returns the action specification of the environment
func (d *Discrete) ActionSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Action, 0,
		float64(d.cab.config.Rides()), environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (d *Discrete) ObservationSpec() environment.Spec {
	features := d.cab.config.EncodingLen()
	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)
	upperBound := mat.NewVecDense(features, nil)
	for i := 0; i < features; i++ {
		upperBound.SetVec(i, 1.0)
	}

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discounting specification of the environment
func (d *Discrete) DiscountSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Discount, d.discount,
		d.discount, environment.Continuous)
}

// RewardSpec returns the reward specification of the environment
func (d *Discrete) RewardSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Reward, d.Min(), d.Max(),
		environment.Continuous)
}

func (d *Discrete) String() string {
	str := "CabDriver  |  State: %v  |  Requests: %d  |  Step: %d  |  " +
		"Clock: %d"
	return fmt.Sprintf(str, d.state, d.offered.Rides(), d.lastStep.Number,
		d.lastStep.Clock)
}
