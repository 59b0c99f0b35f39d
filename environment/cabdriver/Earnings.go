package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/floats"
)

// Earnings implements the task of maximizing the driver's net
// earnings. Each hour spent carrying a passenger earns the Config's
// Revenue, and every hour spent, whether waiting, driving to a pickup,
// or riding, costs the Config's Cost.
//
// Episodes end when any of the Task's Enders ends the episode.
type Earnings struct {
	environment.Starter
	enders []environment.Ender

	config Config

	// Bounds on whole hour travel times, used to bound rewards
	minTravel, maxTravel int
}

// NewEarnings returns a new Earnings task for the Config c, starting
// episodes with s and ending them with enders. The TravelTimes tt are
// used only to bound the rewards attainable.
func NewEarnings(c Config, s environment.Starter, tt *TravelTimes,
	enders ...environment.Ender) *Earnings {
	return &Earnings{
		Starter:   s,
		enders:    enders,
		config:    c,
		minTravel: tt.Min(),
		maxTravel: tt.Max(),
	}
}

// DefaultEarnings returns an Earnings task whose episodes start in
// states drawn uniformly from the state space of cab and end after
// DefaultEpisodeHours hours
func DefaultEarnings(cab *CabDriver, tt *TravelTimes,
	seed uint64) (*Earnings, error) {
	s, err := cab.NewStarter(seed)
	if err != nil {
		return nil, fmt.Errorf("defaultEarnings: %v", err)
	}

	ender := environment.NewClockLimit(DefaultEpisodeHours)
	return NewEarnings(cab.Config(), s, tt, ender), nil
}

// GetReward returns the reward for an action which spent ride hours
// of total hours carrying a passenger
func (e *Earnings) GetReward(ride, total int) float64 {
	return e.config.Reward(ride, total)
}

// End determines whether the episode ends at timestep t
func (e *Earnings) End(t *ts.TimeStep) bool {
	for _, ender := range e.enders {
		if ender.End(t) {
			return true
		}
	}
	return false
}

// Min returns the minimum reward attainable on a single step
func (e *Earnings) Min() float64 {
	return floats.Min(e.rewards())
}

// Max returns the maximum reward attainable on a single step
func (e *Earnings) Max() float64 {
	return floats.Max(e.rewards())
}

// rewards returns the reward of idling and of the extreme combinations
// of positioning and ride time. The reward is linear in both, so its
// extremes lie among these.
func (e *Earnings) rewards() []float64 {
	rewards := []float64{e.GetReward(0, 1)}
	for _, ride := range []int{e.minTravel, e.maxTravel} {
		for _, positioning := range []int{0, e.maxTravel} {
			rewards = append(rewards, e.GetReward(ride, ride+positioning))
		}
	}
	return rewards
}

func (e *Earnings) String() string {
	return fmt.Sprintf("Earnings  |  Revenue: %v  |  Cost: %v",
		e.config.Revenue, e.config.Cost)
}
