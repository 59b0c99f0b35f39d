package policy

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"github.com/samuelfneumann/cabdriver/utils/floatutils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over the immediate reward of
// each offered action. With probability ε an offered action is selected
// uniformly at random, otherwise the offered action with the highest
// immediate reward is selected. Ties are broken in favour of the
// earliest offer.
//
// EGreedy looks only one step ahead and does not learn.
type EGreedy struct {
	cab     *cabdriver.CabDriver
	travel  *cabdriver.TravelTimes
	epsilon float64
	seed    rand.Source
}

// NewEGreedy returns a new EGreedy policy which evaluates offered
// actions on cab with the travel times tt
func NewEGreedy(e float64, cab *cabdriver.CabDriver,
	tt *cabdriver.TravelTimes, seed uint64) *EGreedy {
	return &EGreedy{cab, tt, e, rand.NewSource(seed)}
}

// NewGreedy returns a new greedy policy, an EGreedy policy with ε = 0
func NewGreedy(cab *cabdriver.CabDriver, tt *cabdriver.TravelTimes,
	seed uint64) *EGreedy {
	return NewEGreedy(0.0, cab, tt, seed)
}

// SelectAction selects an action from the ε-greedy policy in the state
// encoded by the timestep's observation
func (p *EGreedy) SelectAction(t ts.TimeStep,
	offered cabdriver.Requests) (*mat.VecDense, error) {
	if offered.Len() == 0 {
		return nil, fmt.Errorf("selectAction: no actions offered")
	}

	if p.epsilon > 0 {
		explore := distuv.Bernoulli{P: p.epsilon, Src: p.seed}
		if explore.Rand() == 1.0 {
			i, err := uniform(offered, p.seed)
			if err != nil {
				return nil, fmt.Errorf("selectAction: %v", err)
			}
			return action(offered.Indices[i]), nil
		}
	}

	i, err := p.greedy(t, offered)
	if err != nil {
		return nil, fmt.Errorf("selectAction: %w", err)
	}
	return action(offered.Indices[i]), nil
}

// greedy returns the index into the offered actions of the action with
// the highest immediate reward
func (p *EGreedy) greedy(t ts.TimeStep, offered cabdriver.Requests) (int,
	error) {
	state, err := p.cab.Decode(t.Observation)
	if err != nil {
		return 0, err
	}

	rewards := make([]float64, offered.Len())
	for i, a := range offered.Actions {
		_, rewards[i], _, err = p.cab.Step(state, a, p.travel)
		if err != nil {
			return 0, err
		}
	}

	_, best := floatutils.Argmax(rewards)
	return best[0], nil
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}
