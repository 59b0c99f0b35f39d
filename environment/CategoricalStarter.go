package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. Dimension i is
// sampled from (0, 1, 2, ... bounds[i]-1) independently of the other
// dimensions, so that the starting state is uniform over the Cartesian
// product of all dimensions.
type CategoricalStarter struct {
	bounds []int
	seed   uint64
	rand   []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, seed uint64) (*CategoricalStarter,
	error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no dimensions to " +
			"sample")
	}

	source := rand.NewSource(seed)

	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		if bounds[i] <= 0 {
			return nil, fmt.Errorf("newCategoricalStarter: dimension %d "+
				"has non-positive bound %d", i, bounds[i])
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	b := make([]int, len(bounds))
	copy(b, bounds)

	return &CategoricalStarter{b, seed, rand}, nil
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, len(c.rand))
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(len(start), start)
}

// Bounds returns the number of categories in each dimension
func (c *CategoricalStarter) Bounds() []int {
	b := make([]int, len(c.bounds))
	copy(b, c.bounds)
	return b
}
