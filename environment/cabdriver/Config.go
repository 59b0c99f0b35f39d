package cabdriver

import (
	"fmt"
)

const (
	DefaultLocations   int     = 5
	DefaultHours       int     = 24
	DefaultDays        int     = 7
	DefaultRevenue     float64 = 9.0 // per hour of ride
	DefaultCost        float64 = 5.0 // per hour of fuel and other costs
	DefaultMaxRequests int     = 15

	// DefaultEpisodeHours is the length of an episode used by
	// DefaultEarnings, 30 days of driving
	DefaultEpisodeHours int = 24 * 30
)

// DefaultRequestRates are the mean number of requests per step at each
// of the DefaultLocations locations
var DefaultRequestRates = []float64{2, 12, 4, 7, 8}

// Config is the immutable configuration of a CabDriver. Configs are
// JSON serializable.
type Config struct {
	Locations int `json:"locations"`
	Hours     int `json:"hours"`
	Days      int `json:"days"`

	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`

	// RequestRates holds the Poisson mean of the number of ride
	// requests at each location
	RequestRates []float64 `json:"requestRates"`
	MaxRequests  int       `json:"maxRequests"`
}

// DefaultConfig returns the default 5 city, 24 hour, 7 day Config
func DefaultConfig() Config {
	rates := make([]float64, len(DefaultRequestRates))
	copy(rates, DefaultRequestRates)

	return Config{
		Locations:    DefaultLocations,
		Hours:        DefaultHours,
		Days:         DefaultDays,
		Revenue:      DefaultRevenue,
		Cost:         DefaultCost,
		RequestRates: rates,
		MaxRequests:  DefaultMaxRequests,
	}
}

// Validate returns an error wrapping ErrDomainConfiguration if the
// Config cannot describe a well-formed state and action space
func (c Config) Validate() error {
	switch {
	case c.Locations <= 0:
		return fmt.Errorf("validate: %w: locations must be positive, have %d",
			ErrDomainConfiguration, c.Locations)

	case c.Hours <= 0:
		return fmt.Errorf("validate: %w: hours must be positive, have %d",
			ErrDomainConfiguration, c.Hours)

	case c.Days <= 0:
		return fmt.Errorf("validate: %w: days must be positive, have %d",
			ErrDomainConfiguration, c.Days)

	case len(c.RequestRates) != c.Locations:
		return fmt.Errorf("validate: %w: %d request rates for %d locations",
			ErrDomainConfiguration, len(c.RequestRates), c.Locations)

	case c.MaxRequests < 0:
		return fmt.Errorf("validate: %w: negative request limit %d",
			ErrDomainConfiguration, c.MaxRequests)
	}

	for i, rate := range c.RequestRates {
		if rate < 0 {
			return fmt.Errorf("validate: %w: negative request rate %v at "+
				"location %d", ErrDomainConfiguration, rate, i)
		}
	}

	return nil
}

// Rides returns the number of ride actions, (m-1)*m
func (c Config) Rides() int {
	return (c.Locations - 1) * c.Locations
}

// EncodingLen returns the length of an encoded state, m+t+d
func (c Config) EncodingLen() int {
	return c.Locations + c.Hours + c.Days
}

// Rollover advances the time of day hour on day by elapsed hours and
// returns the new hour and day. Days wrap around at the end of the week.
//
// elapsed must be non-negative.
func (c Config) Rollover(hour, day, elapsed int) (int, int) {
	total := hour + elapsed
	newHour := total % c.Hours
	newDay := (day + total/c.Hours) % c.Days

	return newHour, newDay
}

// Reward returns the net earnings of a step which spent ride hours
// carrying a passenger out of total hours
func (c Config) Reward(ride, total int) float64 {
	return c.Revenue*float64(ride) - c.Cost*float64(total)
}
