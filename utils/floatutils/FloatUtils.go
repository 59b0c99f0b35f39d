// Package floatutils provides utilities for working with floats
package floatutils

// Argmax returns the maximum value in a slice of float64 along with the
// indices of every occurrence of that value, in increasing order.
// Argmax returns an empty index slice if values is empty.
func Argmax(values []float64) (max float64, indices []int) {
	if len(values) == 0 {
		return 0, nil
	}
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		if values[i] > max {
			max = values[i]
			indices = []int{i}
		} else if values[i] == max {
			indices = append(indices, i)
		}
	}
	return
}
