// Package color defines the device color spaces reachable through the
// rg, k and g content stream operators and their conversion to RGB.
package color

import (
	"errors"
	"fmt"
	"math"
)

// ErrArity is returned when an operand tuple has the wrong length for its space.
var ErrArity = errors.New("wrong number of operands")

// Space is one of the three device color spaces.
type Space int

const (
	RGB Space = iota
	CMYK
	Gray
)

// Spaces lists every supported space in scan order.
var Spaces = []Space{RGB, CMYK, Gray}

// Name returns the lower-case space name ("rgb", "cmyk" or "gray").
func (s Space) Name() string {
	switch s {
	case RGB:
		return "rgb"
	case CMYK:
		return "cmyk"
	case Gray:
		return "gray"
	default:
		return fmt.Sprintf("space(%d)", int(s))
	}
}

func (s Space) String() string {
	return s.Name()
}

// Arity returns the number of operands the space's operator takes.
func (s Space) Arity() int {
	switch s {
	case RGB:
		return 3
	case CMYK:
		return 4
	case Gray:
		return 1
	default:
		return 0
	}
}

// Operator returns the fill operator that selects this space.
func (s Space) Operator() string {
	switch s {
	case RGB:
		return "rg"
	case CMYK:
		return "k"
	case Gray:
		return "g"
	default:
		return ""
	}
}

// AsRGB converts operands in this space to an RGB triple.
//
// CMYK channels are capped at 1 by the subtractive formula; RGB and Gray
// values pass through unchanged, so out-of-range operands stay out of range.
func (s Space) AsRGB(v []float64) ([3]float64, error) {
	if n := s.Arity(); n == 0 || len(v) != n {
		return [3]float64{}, fmt.Errorf("%s: got %d operands: %w", s.Name(), len(v), ErrArity)
	}

	switch s {
	case RGB:
		return [3]float64{v[0], v[1], v[2]}, nil
	case Gray:
		return [3]float64{v[0], v[0], v[0]}, nil
	default:
		c, m, y, k := v[0], v[1], v[2], v[3]
		return [3]float64{
			1 - math.Min(1, c*(1-k)+k),
			1 - math.Min(1, m*(1-k)+k),
			1 - math.Min(1, y*(1-k)+k),
		}, nil
	}
}

// ParseSpace maps a space name back to its Space.
func ParseSpace(name string) (Space, error) {
	for _, s := range Spaces {
		if s.Name() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", name)
}
