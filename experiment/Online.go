package experiment

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/samuelfneumann/cabdriver/experiment/trackers"
	"github.com/samuelfneumann/cabdriver/policy"
	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// Environment is an environment.Environment which offers a subset of
// its actions on each step, such as cabdriver.Discrete
type Environment interface {
	environment.Environment
	Offered() cabdriver.Requests
}

// Online is an Experiment that runs a policy online only. No offline
// evaluation is performed.
type Online struct {
	Environment
	policy.Policy
	episodes        int
	currentEpisodes int
	trackers        []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of trackers.Tracker which determine what data is saved.
func NewOnline(e Environment, p policy.Policy, episodes int,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Policy:      p,
		episodes:    episodes,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with an Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	if o.currentEpisodes >= o.episodes {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: %v", err)
	}
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action, err := o.Policy.SelectAction(step, o.Environment.Offered())
		if err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}

		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}

		// Cache the environment step in each Tracker
		o.track(step)
	}
	o.currentEpisodes++

	// Return whether or not the episode limit has been reached
	return o.currentEpisodes >= o.episodes, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	ended := false

	for !ended {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// Episodes returns the number of episodes run so far
func (o *Online) Episodes() int {
	return o.currentEpisodes
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
