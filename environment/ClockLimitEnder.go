package environment

import ts "github.com/samuelfneumann/cabdriver/timestep"

// ClockLimit implements the Ender interface to end episodes once the
// simulated time elapsed in the episode reaches a limit. Unlike
// StepLimit, which counts decisions, ClockLimit counts the time units
// recorded in each TimeStep's Clock field.
type ClockLimit struct {
	limit int
}

// NewClockLimit returns a new ClockLimit which ends episodes once at
// least limit time units have elapsed
func NewClockLimit(limit int) *ClockLimit {
	return &ClockLimit{limit}
}

// End ends the episode if the TimeStep's Clock has reached the limit
func (c *ClockLimit) End(t *ts.TimeStep) bool {
	if t.Clock >= c.limit {
		t.StepType = ts.Last
		t.SetEnd(ts.Timeout)
		return true
	}
	return false
}

// Limit returns the clock limit
func (c *ClockLimit) Limit() int {
	return c.limit
}
