// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes end
type Ender interface {
	// End returns whether the episode should end at the argument
	// TimeStep. If so, End sets the StepType of the TimeStep to
	// timestep.Last and records the reason the episode ended.
	End(*ts.TimeStep) bool
}

// Task determines how episodes start and how they end. Concrete tasks
// also implement the reward scheme of their environment.
type Task interface {
	Starter
	Ender

	// Min and Max return bounds on the reward attainable on any
	// single timestep
	Min() float64
	Max() float64
}

// Environment implements a simulated environment, which includes a Task
// to complete
type Environment interface {
	Task
	Reset() (ts.TimeStep, error)
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep
	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
