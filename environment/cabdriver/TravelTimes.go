package cabdriver

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// TravelTimes is a read-only table of the number of hours needed to
// travel from an origin to a destination when leaving at some hour on
// some day. The table has shape (m, m, t, d) and is indexed as
// (origin, destination, hour, day).
//
// Travel times are stored as floating point values but are always
// read as whole hours, truncating any fractional part.
type TravelTimes struct {
	table *tensor.Dense
	shape []int
}

// NewTravelTimes returns a TravelTimes table for the Config c, backed
// by a copy of data in row major order
func NewTravelTimes(c Config, data []float64) (*TravelTimes, error) {
	shape := []int{c.Locations, c.Locations, c.Hours, c.Days}
	return newTravelTimes(shape, data)
}

func newTravelTimes(shape []int, data []float64) (*TravelTimes, error) {
	if len(shape) != 4 {
		return nil, fmt.Errorf("newTravelTimes: table must have 4 "+
			"dimensions, have %d", len(shape))
	}

	size := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("newTravelTimes: illegal shape %v", shape)
		}
		size *= dim
	}
	if len(data) != size {
		return nil, fmt.Errorf("newTravelTimes: shape %v needs %d values, "+
			"have %d", shape, size, len(data))
	}

	backing := make([]float64, len(data))
	for i, v := range data {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("newTravelTimes: illegal travel time %v "+
				"at index %d", v, i)
		}
		backing[i] = v
	}

	s := make([]int, len(shape))
	copy(s, shape)

	table := tensor.New(tensor.WithShape(s...), tensor.WithBacking(backing))
	return &TravelTimes{table: table, shape: s}, nil
}

// RandomTravelTimes returns a TravelTimes table for the Config c with
// travel times between distinct locations drawn uniformly from the
// whole hours in [min, max]. Travel from a location to itself takes no
// time.
func RandomTravelTimes(c Config, min, max int, seed uint64) (*TravelTimes,
	error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("randomTravelTimes: illegal range [%d, %d]",
			min, max)
	}

	rng := distuv.Uniform{
		Min: float64(min),
		Max: float64(max + 1),
		Src: rand.NewSource(seed),
	}

	m, t, d := c.Locations, c.Hours, c.Days
	data := make([]float64, m*m*t*d)
	for o := 0; o < m; o++ {
		for dest := 0; dest < m; dest++ {
			for h := 0; h < t; h++ {
				for day := 0; day < d; day++ {
					if o == dest {
						continue
					}
					i := ((o*m+dest)*t+h)*d + day
					data[i] = math.Min(math.Floor(rng.Rand()), float64(max))
				}
			}
		}
	}

	return NewTravelTimes(c, data)
}

// At returns the whole number of hours needed to travel from origin to
// destination when leaving at hour on day. If any index is out of
// range, At returns a *LookupError.
func (t *TravelTimes) At(origin, destination, hour, day int) (int, error) {
	coords := []int{origin, destination, hour, day}
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			return 0, t.lookupError(coords)
		}
	}

	v, err := t.table.At(coords...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", t.lookupError(coords), err)
	}

	// Travel is only considered in hourly intervals
	return int(v.(float64)), nil
}

// Set sets the travel time from origin to destination when leaving at
// hour on day
func (t *TravelTimes) Set(origin, destination, hour, day int,
	hours float64) error {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Errorf("set: illegal travel time %v", hours)
	}

	coords := []int{origin, destination, hour, day}
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			return t.lookupError(coords)
		}
	}
	return t.table.SetAt(hours, coords...)
}

// Shape returns the shape of the table, (m, m, t, d)
func (t *TravelTimes) Shape() []int {
	s := make([]int, len(t.shape))
	copy(s, t.shape)
	return s
}

// Max returns the longest travel time in the table in whole hours
func (t *TravelTimes) Max() int {
	return int(floats.Max(t.data()))
}

// Min returns the shortest travel time in the table in whole hours
func (t *TravelTimes) Min() int {
	return int(floats.Min(t.data()))
}

func (t *TravelTimes) data() []float64 {
	return t.table.Data().([]float64)
}

func (t *TravelTimes) lookupError(coords []int) *LookupError {
	return &LookupError{
		Origin:      coords[0],
		Destination: coords[1],
		Hour:        coords[2],
		Day:         coords[3],
		Shape:       t.Shape(),
	}
}

// travelTimesData is the serialized form of a TravelTimes table
type travelTimesData struct {
	Shape []int
	Data  []float64
}

// Save saves the table to a file with encoding/gob
func (t *TravelTimes) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	data := make([]float64, len(t.data()))
	copy(data, t.data())

	enc := gob.NewEncoder(file)
	if err := enc.Encode(travelTimesData{t.Shape(), data}); err != nil {
		return fmt.Errorf("save: could not encode travel times: %v", err)
	}
	return nil
}

// LoadTravelTimes loads a table saved with TravelTimes.Save
func LoadTravelTimes(filename string) (*TravelTimes, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadTravelTimes: could not open data "+
			"file: %v", err)
	}
	defer file.Close()

	var data travelTimesData
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadTravelTimes: could not decode travel "+
			"times: %v", err)
	}

	return newTravelTimes(data.Shape, data.Data)
}
