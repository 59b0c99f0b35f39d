// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	CabDriver EnvName = "CabDriver"
)

// Config implements a specific configuration of an environment and
// its task.
//
// If TravelTimes is empty, a travel time table is drawn uniformly at
// random from [MinTravel, MaxTravel] hours. Episodes end after
// EpisodeHours simulated hours or EpisodeSteps decisions, whichever
// comes first. A non-positive limit disables that ender.
type Config struct {
	Environment  EnvName
	CabDriver    cabdriver.Config
	TravelTimes  string
	MinTravel    int
	MaxTravel    int
	EpisodeHours int
	EpisodeSteps int
	Discount     float64
}

// Default returns the default cab driver environment configuration:
// 30 day episodes on the default city with random travel times of
// between 1 and 11 hours
func Default() Config {
	return Config{
		Environment:  CabDriver,
		CabDriver:    cabdriver.DefaultConfig(),
		MinTravel:    1,
		MaxTravel:    11,
		EpisodeHours: cabdriver.DefaultEpisodeHours,
		Discount:     1.0,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Environment != CabDriver {
		return fmt.Errorf("validate: no such environment %v", c.Environment)
	}
	if err := c.CabDriver.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if c.TravelTimes == "" && (c.MinTravel < 0 || c.MaxTravel < c.MinTravel) {
		return fmt.Errorf("validate: %w: travel times must satisfy "+
			"0 ≤ min ≤ max (min = %v, max = %v)",
			cabdriver.ErrDomainConfiguration, c.MinTravel, c.MaxTravel)
	}
	if c.EpisodeHours <= 0 && c.EpisodeSteps <= 0 {
		return fmt.Errorf("validate: episodes must be limited by hours " +
			"or steps")
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v ∉ [0, 1]", c.Discount)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (*cabdriver.Discrete, ts.TimeStep,
	error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	cab, err := cabdriver.New(c.CabDriver, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	tt, err := c.travelTimes(seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	starter, err := cab.NewStarter(seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	var enders []environment.Ender
	if c.EpisodeHours > 0 {
		enders = append(enders, environment.NewClockLimit(c.EpisodeHours))
	}
	if c.EpisodeSteps > 0 {
		enders = append(enders, environment.NewStepLimit(c.EpisodeSteps))
	}
	task := cabdriver.NewEarnings(c.CabDriver, starter, tt, enders...)

	env, step, err := cabdriver.NewDiscrete(cab, task, tt, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return env, step, nil
}

// travelTimes loads the travel time table named by the Config or
// generates a random one
func (c Config) travelTimes(seed uint64) (*cabdriver.TravelTimes, error) {
	if c.TravelTimes == "" {
		return cabdriver.RandomTravelTimes(c.CabDriver, c.MinTravel,
			c.MaxTravel, seed)
	}

	tt, err := cabdriver.LoadTravelTimes(c.TravelTimes)
	if err != nil {
		return nil, err
	}

	shape := tt.Shape()
	m, h, d := c.CabDriver.Locations, c.CabDriver.Hours, c.CabDriver.Days
	if len(shape) != 4 || shape[0] != m || shape[1] != m || shape[2] != h ||
		shape[3] != d {
		return nil, fmt.Errorf("%w: travel times of shape %v do not match "+
			"configuration (%v, %v, %v, %v)", cabdriver.ErrDomainConfiguration,
			shape, m, m, h, d)
	}
	return tt, nil
}

// Load loads a Config from the JSON file filename. Fields which the
// file does not set take their values from Default().
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not unmarshal config: %v",
			err)
	}
	return c, nil
}

// Save saves the Config as JSON to filename
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not marshal config: %v", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}
