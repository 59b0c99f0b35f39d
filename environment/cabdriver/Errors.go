package cabdriver

import (
	"errors"
	"fmt"
)

var (
	// ErrDomainConfiguration is returned when a Config cannot describe
	// a well-formed environment
	ErrDomainConfiguration = errors.New("invalid domain configuration")

	// ErrLookupOutOfRange is returned when a travel time is looked up
	// outside the bounds of a TravelTimes table
	ErrLookupOutOfRange = errors.New("travel time lookup out of range")

	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidAction    = errors.New("invalid action")
	ErrActionNotOffered = errors.New("action not offered")
)

// LookupError records a travel time lookup outside the bounds of a
// TravelTimes table
type LookupError struct {
	Origin, Destination int
	Hour, Day           int
	Shape               []int
}

func (l *LookupError) Error() string {
	return fmt.Sprintf("%v: (%d, %d, %d, %d) ∉ %v", ErrLookupOutOfRange,
		l.Origin, l.Destination, l.Hour, l.Day, l.Shape)
}

// Is reports whether target is ErrLookupOutOfRange
func (l *LookupError) Is(target error) bool {
	return target == ErrLookupOutOfRange
}
