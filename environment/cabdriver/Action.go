package cabdriver

import "fmt"

// Kind distinguishes the two variants of an Action
type Kind int

const (
	IdleKind Kind = iota
	RideKind
)

func (k Kind) String() string {
	if k == RideKind {
		return "Ride"
	}
	return "Idle"
}

// Action is either Idle, meaning the driver takes no ride for one hour,
// or a Ride from a pickup location to a different drop location. The
// zero value is Idle.
//
// Actions are comparable and may be used as map keys.
type Action struct {
	kind   Kind
	pickup int
	drop   int
}

// Idle returns the Idle action
func Idle() Action {
	return Action{}
}

// NewRide returns the Ride action from pickup to drop
func NewRide(pickup, drop int) (Action, error) {
	if pickup == drop {
		return Action{}, fmt.Errorf("newRide: %w: pickup and drop both %d",
			ErrInvalidAction, pickup)
	}
	if pickup < 0 || drop < 0 {
		return Action{}, fmt.Errorf("newRide: %w: negative location in "+
			"(%d, %d)", ErrInvalidAction, pickup, drop)
	}
	return Action{RideKind, pickup, drop}, nil
}

// Kind returns the variant of the Action
func (a Action) Kind() Kind {
	return a.kind
}

// IsIdle returns whether the Action is Idle
func (a Action) IsIdle() bool {
	return a.kind == IdleKind
}

// Pickup returns the pickup location of a Ride. For Idle, Pickup
// returns 0.
func (a Action) Pickup() int {
	return a.pickup
}

// Drop returns the drop location of a Ride. For Idle, Drop returns 0.
func (a Action) Drop() int {
	return a.drop
}

func (a Action) String() string {
	if a.IsIdle() {
		return "Idle"
	}
	return fmt.Sprintf("Ride(%d → %d)", a.pickup, a.drop)
}
