// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatset enumerates the values representable by small abstract
// floating-point systems F(radix, precision, [emin, emax)).
//
// Enumerate reproduces the classic textbook enumeration, where for every
// leading digit b in [1, radix-1], every d in [0, precision-1] and every
// exponent e in [emin, emax) the value d*b^e is produced.
// Note, that it uses d as a digit value rather than a digit position,
// so it does not render the mantissa (b0.b1...b[p-1]) of the definition.
// EnumerateMantissa enumerates the mantissas of the definition instead.
//
// Neither enumerator removes duplicates: 1*2^0 and 2*2^-1 are both present.
// Use Distinct or Histogram to collapse them.
package floatset

import (
	"fmt"
)

// Enumerate returns d*b^e for every b in [1, radix-1], d in [0, precision-1], e in [minExp, maxExp).
// See Params.Enumerate.
func Enumerate(radix, precision, minExp, maxExp int) ([]Value, error) {
	return Params{Radix: radix, Precision: precision, MinExp: minExp, MaxExp: maxExp}.Enumerate()
}

// MustEnumerate calls Enumerate and panics on error.
func MustEnumerate(radix, precision, minExp, maxExp int) []Value {
	result, err := Enumerate(radix, precision, minExp, maxExp)
	if err != nil {
		panic(err)
	}
	return result
}

// EnumerateSigned returns every value of Enumerate followed by its negation.
func EnumerateSigned(radix, precision, minExp, maxExp int) ([]Value, error) {
	return Params{Radix: radix, Precision: precision, MinExp: minExp, MaxExp: maxExp}.EnumerateSigned()
}

// Enumerate produces (Radix-1)*Precision*(MaxExp-MinExp) values.
// The leading digit b is the outer loop, d is the middle one, and the exponent is the inner one.
// Exponents are visited in the order e >= 0 ascending, then e < 0 ascending,
// so that for [-1, 2) the order is 0, 1, -1.
func (p Params) Enumerate() ([]Value, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkSize(p.Count()); err != nil {
		return nil, err
	}
	n, _ := p.Count()
	exps := p.exponents()
	result := make([]Value, 0, n)
	for b := 1; b < p.Radix; b++ {
		for d := 0; d < p.Precision; d++ {
			for _, e := range exps {
				result = append(result, Value{Digit: int64(d), Base: int64(b), Exp: e})
			}
		}
	}
	return result, nil
}

// EnumerateSigned returns each value of Enumerate immediately followed by its negation.
func (p Params) EnumerateSigned() ([]Value, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n, ok := p.Count()
	if err := checkSize(n, ok); err != nil {
		return nil, err
	}
	if err := checkSize(2*n, true); err != nil {
		return nil, err
	}
	values, err := p.Enumerate()
	if err != nil {
		return nil, err
	}
	return Signed(values), nil
}

// Signed returns each value immediately followed by its negation.
func Signed(values []Value) []Value {
	result := make([]Value, 0, 2*len(values))
	for _, v := range values {
		result = append(result, v, v.Negate())
	}
	return result
}

// EnumerateMantissa returns m*radix^(e-precision+1) for every e in [MinExp, MaxExp)
// and every integer mantissa m having Precision radix digits,
// so that the value is (b0.b1...b[p-1]) * radix^e.
// If normalized is true, the leading digit b0 is never zero.
// Exponents are the outer loop, mantissas go ascending in the inner one,
// so normalized values are strictly increasing.
func (p Params) EnumerateMantissa(normalized bool) ([]Value, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkSize(p.MantissaCount(normalized)); err != nil {
		return nil, err
	}
	n, _ := p.MantissaCount(normalized)
	total, low, _ := p.mantissaBounds(normalized)
	shift := p.Precision - 1
	result := make([]Value, 0, n)
	for e := p.MinExp; e < p.MaxExp; e++ {
		for m := low; m < total; m++ {
			result = append(result, Value{Digit: int64(m), Base: int64(p.Radix), Exp: e - shift})
		}
	}
	return result, nil
}

// exponents returns [MinExp, MaxExp) in enumeration order.
func (p Params) exponents() []int {
	result := make([]int, 0, p.width())
	start, end := p.MinExp, p.MaxExp
	if start < 0 {
		start = 0
	}
	for e := start; e < p.MaxExp; e++ {
		result = append(result, e)
	}
	if end > 0 {
		end = 0
	}
	for e := p.MinExp; e < end; e++ {
		result = append(result, e)
	}
	return result
}

func checkSize(n uint64, ok bool) error {
	switch {
	case !ok:
		return fmt.Errorf("%w: the number of values overflows uint64", ErrTooLarge)
	case n > MaxValues:
		return fmt.Errorf("%w: %d values requested, at most %d allowed", ErrTooLarge, n, MaxValues)
	default:
		return nil
	}
}
