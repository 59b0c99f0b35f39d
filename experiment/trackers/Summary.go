package trackers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary summarizes the data of a Tracker
type Summary struct {
	N            int
	Mean, StdDev float64
	Min, Max     float64
	StdErr       float64
}

// Summarize returns a Summary of data. The Summary of empty data has
// N = 0 and all other fields NaN.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		nan := math.NaN()
		return Summary{0, nan, nan, nan, nan, nan}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}

	return Summary{
		N:      len(data),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		StdErr: stat.StdErr(std, float64(len(data))),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("N: %d  |  Mean: %.2f ± %.2f  |  Min: %.2f  |  "+
		"Max: %.2f", s.N, s.Mean, s.StdErr, s.Min, s.Max)
}
