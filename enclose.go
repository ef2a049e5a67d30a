package floatset

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"
)

// Enclose returns the nearest representable neighbours lo <= x <= hi.
// Representable numbers are the normalized values of EnumerateMantissa,
// their negations and zero. If x is representable, lo and hi are both equal to x.
// x must not be nil.
func (p Params) Enclose(x *big.Rat) (lo, hi Value, err error) {
	grid, err := p.grid()
	if err != nil {
		return lo, hi, err
	}
	i := slices.IndexFunc(grid, func(v Value) bool {
		return v.Rat().Cmp(x) >= 0
	})
	switch {
	case i >= 0 && grid[i].Rat().Cmp(x) == 0:
		return grid[i], grid[i], nil
	case i <= 0:
		return lo, hi, fmt.Errorf("%w: %s is outside [%s, %s]", ErrOutOfRange, x.RatString(), grid[0], grid[len(grid)-1])
	default:
		return grid[i-1], grid[i], nil
	}
}

// grid returns distinct signed normalized values and zero in ascending order.
func (p Params) grid() ([]Value, error) {
	values, err := p.EnumerateMantissa(true)
	if err != nil {
		return nil, err
	}
	signed := append(Signed(values), Value{Base: int64(p.Radix)})
	return Distinct(signed), nil
}
