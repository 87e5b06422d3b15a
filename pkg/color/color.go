package color

import "fmt"

// Key identifies a color by space and operand tuple. It is comparable and
// safe to use as a map key.
type Key struct {
	Space Space
	n     int
	v     [4]float64
}

// Color is an operand tuple in a given space together with its RGB form.
// RGB and Hex are computed once by New; a Color is never modified afterwards.
type Color struct {
	Space Space
	Value []float64
	RGB   [3]float64
	Hex   string
}

// New builds a Color, converting the operands to RGB and hex.
func New(space Space, operands ...float64) (Color, error) {
	rgb, err := space.AsRGB(operands)
	if err != nil {
		return Color{}, err
	}

	value := make([]float64, len(operands))
	copy(value, operands)

	return Color{
		Space: space,
		Value: value,
		RGB:   rgb,
		Hex:   Hex(rgb),
	}, nil
}

// MustNew is like New but panics on an arity mismatch.
func MustNew(space Space, operands ...float64) Color {
	c, err := New(space, operands...)
	if err != nil {
		panic(err)
	}
	return c
}

// Key returns the identity of c.
func (c Color) Key() Key {
	k := Key{Space: c.Space, n: len(c.Value)}
	copy(k.v[:], c.Value)
	return k
}

// Operands returns the operand tuple of k.
func (k Key) Operands() []float64 {
	out := make([]float64, k.n)
	copy(out, k.v[:k.n])
	return out
}

func (c Color) String() string {
	return fmt.Sprintf("%s %s %v", c.Hex, c.Space.Name(), c.Value)
}

// Hex encodes an RGB triple as #RRGGBB. Each channel is scaled by 255 and
// truncated, not rounded, then held to the byte range.
func Hex(rgb [3]float64) string {
	return fmt.Sprintf("#%02X%02X%02X", Byte(rgb[0]), Byte(rgb[1]), Byte(rgb[2]))
}

// Byte scales a [0,1] channel to [0,255] by truncation.
func Byte(ch float64) uint8 {
	f := ch * 255
	switch {
	case !(f > 0):
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
