// Package policy implements fixed, non-learning policies which choose
// among the actions offered by the cab driver environment
package policy

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

// Policy selects one of the offered actions at a timestep. Selected
// actions are 1-dimensional and hold the index of the action in the
// action space, as accepted by cabdriver.Discrete.
type Policy interface {
	SelectAction(t ts.TimeStep, offered cabdriver.Requests) (*mat.VecDense,
		error)
}

// Type is the type of a Policy
type Type string

const (
	RandomPolicy  Type = "Random"
	GreedyPolicy  Type = "Greedy"
	EGreedyPolicy Type = "EGreedy"
)

// Config represents a configuration for creating a Policy. Configs are
// JSON serializable.
type Config struct {
	Type    Type
	Epsilon float64 // only used by EGreedy
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	switch c.Type {
	case RandomPolicy, GreedyPolicy:
		return nil

	case EGreedyPolicy:
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("validate: epsilon %v ∉ [0, 1]", c.Epsilon)
		}
		return nil
	}
	return fmt.Errorf("validate: no such policy %v", c.Type)
}

// Create creates the Policy that the Config describes for the
// environment env
func (c Config) Create(env *cabdriver.Discrete, seed uint64) (Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	switch c.Type {
	case RandomPolicy:
		return NewRandom(seed), nil

	case GreedyPolicy:
		return NewGreedy(env.CabDriver(), env.TravelTimes(), seed), nil
	}
	return NewEGreedy(c.Epsilon, env.CabDriver(), env.TravelTimes(), seed), nil
}

func action(index int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(index)})
}
