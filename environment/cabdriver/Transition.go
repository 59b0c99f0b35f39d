package cabdriver

import "fmt"

// Outcome is the result of taking an action in a state
type Outcome struct {
	Next State

	// RideTime is the number of hours spent carrying a passenger
	RideTime int

	// TotalTime is the number of hours the action took, including
	// waiting and travel to the pickup location
	TotalTime int
}

// NextState returns the outcome of taking action a in state s, with
// travel times read from tt.
//
// Idle waits for one hour at the current location. A Ride whose pickup
// is the current location takes the travel time from pickup to drop at
// the current hour and day. A Ride whose pickup is elsewhere first
// travels to the pickup, and the ride then starts at the hour and day
// of arrival. The driver ends up at the drop location.
func (c *CabDriver) NextState(s State, a Action, tt *TravelTimes) (Outcome,
	error) {
	if err := s.Validate(c.config); err != nil {
		return Outcome{}, fmt.Errorf("nextState: %w", err)
	}

	var wait, positioning, ride int
	location := s.Location

	switch a.Kind() {
	case IdleKind:
		wait = 1

	case RideKind:
		if _, err := c.ActionIndex(a); err != nil {
			return Outcome{}, fmt.Errorf("nextState: %w", err)
		}

		hour, day := s.Hour, s.Day
		if a.Pickup() != s.Location {
			var err error
			positioning, err = tt.At(s.Location, a.Pickup(), s.Hour, s.Day)
			if err != nil {
				return Outcome{}, fmt.Errorf("nextState: positioning: %w", err)
			}
			hour, day = c.config.Rollover(s.Hour, s.Day, positioning)
		}

		var err error
		ride, err = tt.At(a.Pickup(), a.Drop(), hour, day)
		if err != nil {
			return Outcome{}, fmt.Errorf("nextState: ride: %w", err)
		}
		location = a.Drop()

	default:
		return Outcome{}, fmt.Errorf("nextState: %w: unknown kind %v",
			ErrInvalidAction, a.Kind())
	}

	total := wait + positioning + ride
	hour, day := c.config.Rollover(s.Hour, s.Day, total)

	return Outcome{
		Next:      State{location, hour, day},
		RideTime:  ride,
		TotalTime: total,
	}, nil
}

// Rollover advances hour on day by elapsed hours, wrapping days at the
// end of the week
func (c *CabDriver) Rollover(hour, day, elapsed int) (int, int) {
	return c.config.Rollover(hour, day, elapsed)
}

// Reward returns the net earnings of spending ride hours of total
// hours carrying a passenger
func (c *CabDriver) Reward(ride, total int) float64 {
	return c.config.Reward(ride, total)
}

// Step takes action a in state s and returns the next state, the
// reward, and the number of hours the action took
func (c *CabDriver) Step(s State, a Action, tt *TravelTimes) (State, float64,
	int, error) {
	outcome, err := c.NextState(s, a, tt)
	if err != nil {
		return State{}, 0, 0, fmt.Errorf("step: %w", err)
	}

	reward := c.Reward(outcome.RideTime, outcome.TotalTime)
	return outcome.Next, reward, outcome.TotalTime, nil
}
