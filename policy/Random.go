package policy

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random selects uniformly among the offered actions
type Random struct {
	seed rand.Source
}

// NewRandom returns a new Random policy
func NewRandom(seed uint64) *Random {
	return &Random{rand.NewSource(seed)}
}

// SelectAction selects an offered action uniformly at random
func (r *Random) SelectAction(_ ts.TimeStep,
	offered cabdriver.Requests) (*mat.VecDense, error) {
	i, err := uniform(offered, r.seed)
	if err != nil {
		return nil, fmt.Errorf("selectAction: %v", err)
	}
	return action(offered.Indices[i]), nil
}

// uniform samples an index into the offered actions uniformly
func uniform(offered cabdriver.Requests, src rand.Source) (int, error) {
	if offered.Len() == 0 {
		return 0, fmt.Errorf("no actions offered")
	}

	probabilities := make([]float64, offered.Len())
	for i := range probabilities {
		probabilities[i] = 1.0 / float64(len(probabilities))
	}

	dist := distuv.NewCategorical(probabilities, src)
	return int(dist.Rand()), nil
}
