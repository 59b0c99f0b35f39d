package cabdriver

import (
	"errors"
	"testing"
)

// constantTravelTimes returns a table where every trip between distinct
// locations takes hours hours
func constantTravelTimes(t *testing.T, c Config, hours float64) *TravelTimes {
	t.Helper()

	m, h, d := c.Locations, c.Hours, c.Days
	data := make([]float64, m*m*h*d)
	for i := range data {
		data[i] = hours
	}

	tt, err := NewTravelTimes(c, data)
	if err != nil {
		t.Fatal(err)
	}
	return tt
}

func TestStepPickupAtLocation(t *testing.T) {
	cab := newTestCabDriver(t)
	tt := constantTravelTimes(t, cab.Config(), 7)
	if err := tt.Set(2, 4, 10, 3, 3); err != nil {
		t.Fatal(err)
	}

	s := State{2, 10, 3}
	a, _ := NewRide(2, 4)

	outcome, err := cab.NextState(s, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.RideTime != 3 || outcome.TotalTime != 3 {
		t.Errorf("times: want(3, 3) have(%v, %v)", outcome.RideTime,
			outcome.TotalTime)
	}

	next, reward, total, err := cab.Step(s, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if want := (State{4, 13, 3}); next != want {
		t.Errorf("next state: want(%v) have(%v)", want, next)
	}
	if reward != 12 {
		t.Errorf("reward: want(12) have(%v)", reward)
	}
	if total != 3 {
		t.Errorf("total time: want(3) have(%v)", total)
	}
}

func TestStepPickupElsewhere(t *testing.T) {
	cab := newTestCabDriver(t)
	tt := constantTravelTimes(t, cab.Config(), 9)
	if err := tt.Set(2, 1, 10, 3, 2); err != nil {
		t.Fatal(err)
	}
	if err := tt.Set(1, 4, 12, 3, 4); err != nil {
		t.Fatal(err)
	}

	s := State{2, 10, 3}
	a, _ := NewRide(1, 4)

	outcome, err := cab.NextState(s, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.RideTime != 4 || outcome.TotalTime != 6 {
		t.Errorf("times: want(4, 6) have(%v, %v)", outcome.RideTime,
			outcome.TotalTime)
	}

	next, reward, total, err := cab.Step(s, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if want := (State{4, 16, 3}); next != want {
		t.Errorf("next state: want(%v) have(%v)", want, next)
	}
	if reward != 6 {
		t.Errorf("reward: want(6) have(%v)", reward)
	}
	if total != 6 {
		t.Errorf("total time: want(6) have(%v)", total)
	}
}

func TestStepRideLooksUpRevisedDay(t *testing.T) {
	cab := newTestCabDriver(t)
	tt := constantTravelTimes(t, cab.Config(), 1)

	// Positioning from 3 to 0 leaving at 22:00 on day 6 arrives at
	// 01:00 on day 0, when the ride takes 5 hours
	if err := tt.Set(3, 0, 22, 6, 3); err != nil {
		t.Fatal(err)
	}
	if err := tt.Set(0, 1, 1, 0, 5); err != nil {
		t.Fatal(err)
	}

	a, _ := NewRide(0, 1)
	next, reward, total, err := cab.Step(State{3, 22, 6}, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if want := (State{1, 6, 0}); next != want {
		t.Errorf("next state: want(%v) have(%v)", want, next)
	}
	if total != 8 || reward != 9*5-5*8 {
		t.Errorf("want(total 8, reward %v) have(%v, %v)", 9*5-5*8, total,
			reward)
	}
}

func TestIdle(t *testing.T) {
	cab := newTestCabDriver(t)

	for _, hours := range []float64{0, 3, 11} {
		tt := constantTravelTimes(t, cab.Config(), hours)
		for _, s := range cab.StateSpace() {
			outcome, err := cab.NextState(s, Idle(), tt)
			if err != nil {
				t.Fatal(err)
			}
			if outcome.RideTime != 0 || outcome.TotalTime != 1 {
				t.Fatalf("idle in %v: want(0, 1) have(%v, %v)", s,
					outcome.RideTime, outcome.TotalTime)
			}
			if outcome.Next.Location != s.Location {
				t.Fatalf("idle in %v moved to %v", s, outcome.Next)
			}

			hour, day := cab.Rollover(s.Hour, s.Day, 1)
			if outcome.Next.Hour != hour || outcome.Next.Day != day {
				t.Fatalf("idle in %v: next %v", s, outcome.Next)
			}
			if r := cab.Reward(outcome.RideTime, outcome.TotalTime); r != -DefaultCost {
				t.Fatalf("idle reward: want(%v) have(%v)", -DefaultCost, r)
			}
		}
	}
}

func TestFractionalTravelTimeTruncated(t *testing.T) {
	cab := newTestCabDriver(t)
	tt := constantTravelTimes(t, cab.Config(), 1)
	if err := tt.Set(0, 3, 5, 1, 2.9); err != nil {
		t.Fatal(err)
	}

	a, _ := NewRide(0, 3)
	outcome, err := cab.NextState(State{0, 5, 1}, a, tt)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.RideTime != 2 || outcome.Next.Hour != 7 {
		t.Errorf("want(ride 2, hour 7) have(%v, %v)", outcome.RideTime,
			outcome.Next.Hour)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	cab := newTestCabDriver(t)

	small := DefaultConfig()
	small.Locations = 3
	small.RequestRates = []float64{1, 1, 1}
	tt := constantTravelTimes(t, small, 2)

	a, _ := NewRide(1, 4)
	_, err := cab.NextState(State{0, 0, 0}, a, tt)
	if !errors.Is(err, ErrLookupOutOfRange) {
		t.Fatalf("want(%v) have(%v)", ErrLookupOutOfRange, err)
	}

	var lookup *LookupError
	if !errors.As(err, &lookup) {
		t.Fatalf("want *LookupError, have %T", err)
	}
	if lookup.Origin != 1 || lookup.Destination != 4 {
		t.Errorf("lookup error for wrong coordinates: %v", lookup)
	}

	if _, _, _, err := cab.Step(State{0, 0, 0}, a, tt); !errors.Is(err,
		ErrLookupOutOfRange) {
		t.Errorf("step: want(%v) have(%v)", ErrLookupOutOfRange, err)
	}
}

func TestNextStateInvalidInputs(t *testing.T) {
	cab := newTestCabDriver(t)
	tt := constantTravelTimes(t, cab.Config(), 2)

	if _, err := cab.NextState(State{0, 0, 7}, Idle(), tt); !errors.Is(err,
		ErrInvalidState) {
		t.Errorf("invalid state: want(%v) have(%v)", ErrInvalidState, err)
	}

	a, _ := NewRide(0, 5)
	if _, err := cab.NextState(State{0, 0, 0}, a, tt); !errors.Is(err,
		ErrInvalidAction) {
		t.Errorf("invalid action: want(%v) have(%v)", ErrInvalidAction, err)
	}
}
