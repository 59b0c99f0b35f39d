package cabdriver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Encode returns the one-hot encoding of s, a vector of length m+t+d.
// The first m features encode the location, the next t the hour, and
// the last d the day.
func (c *CabDriver) Encode(s State) (*mat.VecDense, error) {
	if err := s.Validate(c.config); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	m, t := c.config.Locations, c.config.Hours
	encoding := mat.NewVecDense(c.config.EncodingLen(), nil)
	encoding.SetVec(s.Location, 1.0)
	encoding.SetVec(m+s.Hour, 1.0)
	encoding.SetVec(m+t+s.Day, 1.0)

	return encoding, nil
}

// EncodeStateAction returns the one-hot encoding of the state-action
// pair (s, a), a vector of length m+t+d+m+m. The state is encoded as in
// Encode and is followed by a one-hot pickup block and a one-hot drop
// block. Both action blocks are zero for Idle.
func (c *CabDriver) EncodeStateAction(s State, a Action) (*mat.VecDense,
	error) {
	state, err := c.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("encodeStateAction: %w", err)
	}
	if _, err := c.ActionIndex(a); err != nil {
		return nil, fmt.Errorf("encodeStateAction: %w", err)
	}

	m, n := c.config.Locations, c.config.EncodingLen()
	encoding := mat.NewVecDense(n+2*m, nil)
	encoding.SliceVec(0, n).(*mat.VecDense).CopyVec(state)

	if !a.IsIdle() {
		encoding.SetVec(n+a.Pickup(), 1.0)
		encoding.SetVec(n+m+a.Drop(), 1.0)
	}

	return encoding, nil
}

// Decode returns the State encoded by v, the inverse of Encode
func (c *CabDriver) Decode(v mat.Vector) (State, error) {
	if v.Len() != c.config.EncodingLen() {
		return State{}, fmt.Errorf("decode: %w: encoding has length %d, "+
			"want %d", ErrInvalidState, v.Len(), c.config.EncodingLen())
	}

	m, t, d := c.config.Locations, c.config.Hours, c.config.Days
	location, err := oneHot(v, 0, m)
	if err != nil {
		return State{}, fmt.Errorf("decode: location: %w", err)
	}
	hour, err := oneHot(v, m, m+t)
	if err != nil {
		return State{}, fmt.Errorf("decode: hour: %w", err)
	}
	day, err := oneHot(v, m+t, m+t+d)
	if err != nil {
		return State{}, fmt.Errorf("decode: day: %w", err)
	}

	return State{location, hour, day}, nil
}

// oneHot returns the offset of the single 1.0 in v[start:end]
func oneHot(v mat.Vector, start, end int) (int, error) {
	hot := -1
	for i := start; i < end; i++ {
		switch v.AtVec(i) {
		case 0.0:
		case 1.0:
			if hot >= 0 {
				return 0, fmt.Errorf("%w: block [%d, %d) has more than "+
					"one hot feature", ErrInvalidState, start, end)
			}
			hot = i - start
		default:
			return 0, fmt.Errorf("%w: feature %d = %v is not one-hot",
				ErrInvalidState, i, v.AtVec(i))
		}
	}

	if hot < 0 {
		return 0, fmt.Errorf("%w: block [%d, %d) has no hot feature",
			ErrInvalidState, start, end)
	}
	return hot, nil
}
