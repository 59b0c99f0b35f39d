package envconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"gonum.org/v1/gonum/mat"
)

func TestDefaultCreate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	env, step, err := c.Create(11)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if !step.First() {
		t.Errorf("first step has type %v", step.StepType)
	}
	if step.Observation.Len() != c.CabDriver.EncodingLen() {
		t.Errorf("observation length: want %v, got %v",
			c.CabDriver.EncodingLen(), step.Observation.Len())
	}

	tt := env.TravelTimes()
	if tt.Min() != 0 {
		t.Errorf("travel from a location to itself should take 0 hours, "+
			"minimum was %v", tt.Min())
	}
	if tt.Max() > c.MaxTravel {
		t.Errorf("travel time %v exceeds maximum %v", tt.Max(), c.MaxTravel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		domain bool
	}{
		{"environment", func(c *Config) { c.Environment = "MountainCar" }, false},
		{"locations", func(c *Config) {
			c.CabDriver.Locations = 0
			c.CabDriver.RequestRates = nil
		}, true},
		{"travel", func(c *Config) { c.MinTravel, c.MaxTravel = 4, 2 }, true},
		{"negative travel", func(c *Config) { c.MinTravel = -1 }, true},
		{"no ender", func(c *Config) { c.EpisodeHours = 0 }, false},
		{"discount", func(c *Config) { c.Discount = 1.5 }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			test.modify(&c)

			err := c.Validate()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if got := errors.Is(err, cabdriver.ErrDomainConfiguration); got != test.domain {
				t.Errorf("errors.Is(err, ErrDomainConfiguration): want %v, "+
					"got %v (%v)", test.domain, got, err)
			}
			if _, _, err := c.Create(1); err == nil {
				t.Errorf("create should fail for an invalid config")
			}
		})
	}
}

func TestStepLimit(t *testing.T) {
	c := Default()
	c.EpisodeHours = 0
	c.EpisodeSteps = 3

	env, _, err := c.Create(5)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}

	for i := 1; i <= c.EpisodeSteps; i++ {
		idle := env.Offered().Indices[env.Offered().Len()-1]
		step, last, err := env.Step(action(idle))
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if last != (i == c.EpisodeSteps) {
			t.Errorf("step %d: last = %v", i, last)
		}
		if step.Number != i {
			t.Errorf("step number: want %v, got %v", i, step.Number)
		}
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()

	c := Default()
	c.CabDriver.Locations = 3
	c.CabDriver.RequestRates = []float64{1, 2, 3}
	c.EpisodeSteps = 50

	filename := filepath.Join(dir, "env.json")
	if err := c.Save(filename); err != nil {
		t.Fatalf("could not save config: %v", err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}
	if loaded.CabDriver.Locations != 3 || loaded.EpisodeSteps != 50 {
		t.Errorf("loaded config differs: %+v", loaded)
	}
	for i, r := range c.CabDriver.RequestRates {
		if loaded.CabDriver.RequestRates[i] != r {
			t.Errorf("request rate %d: want %v, got %v", i, r,
				loaded.CabDriver.RequestRates[i])
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("loading a missing file should fail")
	}
}

func TestTravelTimesFile(t *testing.T) {
	dir := t.TempDir()

	c := Default()
	tt, err := cabdriver.RandomTravelTimes(c.CabDriver, 2, 2, 3)
	if err != nil {
		t.Fatalf("could not create travel times: %v", err)
	}

	c.TravelTimes = filepath.Join(dir, "tm.gob")
	if err := tt.Save(c.TravelTimes); err != nil {
		t.Fatalf("could not save travel times: %v", err)
	}

	env, _, err := c.Create(3)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if got := env.TravelTimes().Max(); got != 2 {
		t.Errorf("loaded table maximum: want 2, got %v", got)
	}

	// A table for a different city must be rejected
	c.CabDriver.Locations = 4
	c.CabDriver.RequestRates = []float64{1, 1, 1, 1}
	_, _, err = c.Create(3)
	if !errors.Is(err, cabdriver.ErrDomainConfiguration) {
		t.Errorf("expected ErrDomainConfiguration, got %v", err)
	}
}

func action(index int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(index)})
}

func TestLoadPartialConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "env.json")
	data := []byte(`{
	"CabDriver": {
		"locations": 3,
		"requestRates": [1, 2, 3]
	},
	"EpisodeSteps": 10
}`)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(filename)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	def := Default()
	if c.CabDriver.MaxRequests != def.CabDriver.MaxRequests {
		t.Errorf("max requests: want %v, got %v", def.CabDriver.MaxRequests,
			c.CabDriver.MaxRequests)
	}
	if c.CabDriver.Hours != def.CabDriver.Hours ||
		c.CabDriver.Revenue != def.CabDriver.Revenue ||
		c.EpisodeHours != def.EpisodeHours || c.Environment != CabDriver {
		t.Errorf("missing fields should take default values: %+v", c)
	}
	if c.CabDriver.Locations != 3 || c.EpisodeSteps != 10 {
		t.Errorf("fields set in the file were not loaded: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestSingleLocationCreate(t *testing.T) {
	c := Default()
	c.CabDriver.Locations = 1
	c.CabDriver.RequestRates = []float64{12}
	c.EpisodeHours = 24

	env, _, err := c.Create(9)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}

	for i := 1; i <= c.EpisodeHours; i++ {
		offered := env.Offered()
		if offered.Len() != 1 || offered.Indices[0] != 0 {
			t.Fatalf("step %d: want only Idle offered, got %v", i,
				offered.Indices)
		}

		step, last, err := env.Step(action(0))
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if step.Duration != 1 || step.Clock != i {
			t.Errorf("step %d: duration %v, clock %v", i, step.Duration,
				step.Clock)
		}
		if last != (i == c.EpisodeHours) {
			t.Errorf("step %d: last = %v", i, last)
		}
	}
}
