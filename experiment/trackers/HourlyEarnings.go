package trackers

import ts "github.com/samuelfneumann/cabdriver/timestep"

// HourlyEarnings tracks and saves the episodic return divided by the
// simulated hours elapsed in the episode, as recorded in each
// TimeStep's Clock field.
//
// Episodes which end before any time elapses are recorded as 0.
type HourlyEarnings struct {
	currentReturn float64
	rates         []float64
	filename      string
}

// NewHourlyEarnings returns a new HourlyEarnings tracker which will
// save its data at the specified location filename
func NewHourlyEarnings(filename string) *HourlyEarnings {
	return &HourlyEarnings{filename: filename}
}

// Track accumulates the rewards of an episode and caches the earnings
// per hour when the episode ends
func (h *HourlyEarnings) Track(t ts.TimeStep) {
	if t.First() {
		h.currentReturn = 0
	}
	h.currentReturn += t.Reward

	if !t.Last() {
		return
	}

	rate := 0.0
	if t.Clock > 0 {
		rate = h.currentReturn / float64(t.Clock)
	}
	h.rates = append(h.rates, rate)
	h.currentReturn = 0
}

// Data returns the earnings per hour of each finished episode
func (h *HourlyEarnings) Data() []float64 {
	data := make([]float64, len(h.rates))
	copy(data, h.rates)
	return data
}

// Save saves the data tracked by the HourlyEarnings Tracker to disk
func (h *HourlyEarnings) Save() error {
	return save(h.filename, h.rates)
}
