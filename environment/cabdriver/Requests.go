package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/utils/intutils"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Requests is the set of actions offered to the driver on a single
// step. Indices index into the action space and Actions holds the
// corresponding actions. Idle is always offered and is always last.
type Requests struct {
	Indices []int
	Actions []Action
}

// Len returns the number of offered actions, including Idle
func (r Requests) Len() int {
	return len(r.Indices)
}

// Offers returns whether the action at index i of the action space is
// offered
func (r Requests) Offers(i int) bool {
	for _, index := range r.Indices {
		if index == i {
			return true
		}
	}
	return false
}

// Rides returns the number of ride requests, excluding Idle
func (r Requests) Rides() int {
	if len(r.Indices) == 0 {
		return 0
	}
	return len(r.Indices) - 1
}

// Requests samples the actions offered in state s. The number of ride
// requests is drawn from a Poisson distribution with the request rate
// of the driver's location, limited to the Config's MaxRequests and to
// the number of distinct rides. Rides are drawn uniformly without
// replacement, and Idle is then appended.
func (c *CabDriver) Requests(s State) (Requests, error) {
	if err := s.Validate(c.config); err != nil {
		return Requests{}, fmt.Errorf("requests: %w", err)
	}

	var draw float64
	if rate := c.config.RequestRates[s.Location]; rate > 0 {
		poisson := distuv.Poisson{Lambda: rate, Src: c.src}
		draw = poisson.Rand()
	}

	pool := c.config.Rides()
	n := requestCount(draw, c.config.MaxRequests, pool)

	indices := make([]int, n, n+1)
	if n > 0 {
		// Sample from [0, pool) and shift past the Idle index
		sampleuv.WithoutReplacement(indices, pool, c.src)
		for i := range indices {
			indices[i]++
		}
	}
	indices = append(indices, 0)

	actions := make([]Action, len(indices))
	for i, index := range indices {
		actions[i] = c.actions[index]
	}

	return Requests{indices, actions}, nil
}

// requestCount converts a Poisson draw to the number of distinct rides
// to sample, at most max and never more than the pool of rides
func requestCount(draw float64, max, pool int) int {
	return intutils.Clip(int(draw), 0, intutils.Min(max, pool))
}
