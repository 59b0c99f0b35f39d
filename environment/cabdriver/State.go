package cabdriver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// State is the driver's current location together with the hour of the
// day and the day of the week
type State struct {
	Location int `json:"location"`
	Hour     int `json:"hour"`
	Day      int `json:"day"`
}

// Validate returns an error wrapping ErrInvalidState if any component
// of s falls outside the bounds of c
func (s State) Validate(c Config) error {
	if s.Location < 0 || s.Location >= c.Locations ||
		s.Hour < 0 || s.Hour >= c.Hours ||
		s.Day < 0 || s.Day >= c.Days {
		return fmt.Errorf("%w: %v ∉ [0, %d) × [0, %d) × [0, %d)",
			ErrInvalidState, s, c.Locations, c.Hours, c.Days)
	}
	return nil
}

func (s State) String() string {
	return fmt.Sprintf("(location: %d, hour: %d, day: %d)", s.Location,
		s.Hour, s.Day)
}

// stateFromVec converts a (location, hour, day) vector, as returned by
// a Starter, to a State
func stateFromVec(v mat.Vector) (State, error) {
	if v.Len() != 3 {
		return State{}, fmt.Errorf("%w: start vector has length %d, want 3",
			ErrInvalidState, v.Len())
	}
	return State{
		Location: int(v.AtVec(0)),
		Hour:     int(v.AtVec(1)),
		Day:      int(v.AtVec(2)),
	}, nil
}
