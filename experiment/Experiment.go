// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/samuelfneumann/cabdriver/experiment/trackers"
	"github.com/samuelfneumann/cabdriver/policy"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep's
// data in RAM to be later saved to disk. The Save() function will then
// take all cached data and save it to disk. This is usually performed
// after an experiment has been run. The Run() method will run all
// episodes of the experiment. The RunEpisode() function will run a
// single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// will send each TimeStep to Trackers using the Tracker's Track()
// method. New Trackers can be registered with an Experiment through
// the constructor or through an Experiment's Register() function.
type Experiment interface {
	Run() error

	// Returns whether or not the last episode of the experiment has
	// been run
	RunEpisode() (bool, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Episodes int
	EnvConf  envconfig.Config
	Policy   policy.Config
}

// CreateExp creates the Experiment described by the Config
func (c Config) CreateExp(seed uint64, t []trackers.Tracker) (Experiment,
	error) {
	if c.Episodes <= 0 {
		return nil, fmt.Errorf("createExp: cannot run %v episodes",
			c.Episodes)
	}

	env, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: "+
			"%v", err)
	}

	p, err := c.Policy.Create(env, seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create policy: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, p, c.Episodes, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
