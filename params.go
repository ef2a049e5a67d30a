// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/avdva/floatset/internal/mathutil"
)

const (
	// MaxValues is the largest number of values a single enumeration may produce.
	MaxValues = 1 << 20
	// MaxExpMagnitude bounds the absolute value of MinExp and MaxExp.
	MaxExpMagnitude = math.MaxInt32
)

// Params describes a floating-point system F(radix, precision, [MinExp, MaxExp)).
// The exponent range is half-open.
type Params struct {
	Radix     int `json:"radix"`
	Precision int `json:"precision"`
	MinExp    int `json:"emin"`
	MaxExp    int `json:"emax"`
}

// Validate checks all the parameters and reports every violation found.
// Errors can be matched with errors.Is against ErrInvalidRadix,
// ErrInvalidPrecision and ErrInvalidExponentRange.
func (p Params) Validate() error {
	var result *multierror.Error
	if p.Radix < 2 {
		result = multierror.Append(result, fmt.Errorf("%w: radix %d is less than 2", ErrInvalidRadix, p.Radix))
	}
	if p.Precision < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: precision %d is less than 1", ErrInvalidPrecision, p.Precision))
	}
	for _, e := range [...]int{p.MinExp, p.MaxExp} {
		if e < -MaxExpMagnitude || e > MaxExpMagnitude {
			result = multierror.Append(result, fmt.Errorf("%w: bound %d is out of [%d, %d]",
				ErrInvalidExponentRange, e, -MaxExpMagnitude, MaxExpMagnitude))
		}
	}
	if p.MinExp >= p.MaxExp {
		result = multierror.Append(result, fmt.Errorf("%w: [%d, %d) is empty", ErrInvalidExponentRange, p.MinExp, p.MaxExp))
	}
	return flatten(result)
}

// Count returns the number of values Enumerate produces for p,
// or false if the number overflows uint64. p must be valid.
func (p Params) Count() (uint64, bool) {
	n, ok := mathutil.Mul(uint64(p.Radix-1), uint64(p.Precision))
	if !ok {
		return 0, false
	}
	return mathutil.Mul(n, p.width())
}

// MantissaCount returns the number of values EnumerateMantissa produces for p,
// or false if the number overflows uint64. p must be valid.
func (p Params) MantissaCount(normalized bool) (uint64, bool) {
	total, low, ok := p.mantissaBounds(normalized)
	if !ok {
		return 0, false
	}
	return mathutil.Mul(total-low, p.width())
}

// width returns the number of exponents in [MinExp, MaxExp).
func (p Params) width() uint64 {
	return uint64(p.MaxExp) - uint64(p.MinExp)
}

// mantissaBounds returns the half-open range of integer mantissas [low, total)
// having Precision radix digits.
func (p Params) mantissaBounds(normalized bool) (total, low uint64, ok bool) {
	total, ok = mathutil.Pow(uint64(p.Radix), p.Precision)
	if !ok {
		return 0, 0, false
	}
	if normalized {
		low, _ = mathutil.Pow(uint64(p.Radix), p.Precision-1)
	}
	return total, low, true
}

// UnmarshalJSON decodes params from a json object.
// Numbers with a fractional part are rejected with the error of the corresponding parameter.
// A json null leaves p unchanged.
func (p *Params) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw struct {
		Radix     json.Number `json:"radix"`
		Precision json.Number `json:"precision"`
		MinExp    json.Number `json:"emin"`
		MaxExp    json.Number `json:"emax"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var (
		result *multierror.Error
		parsed Params
		err    error
	)
	if parsed.Radix, err = jsonInt(raw.Radix, "radix", ErrInvalidRadix); err != nil {
		result = multierror.Append(result, err)
	}
	if parsed.Precision, err = jsonInt(raw.Precision, "precision", ErrInvalidPrecision); err != nil {
		result = multierror.Append(result, err)
	}
	if parsed.MinExp, err = jsonInt(raw.MinExp, "emin", ErrInvalidExponentRange); err != nil {
		result = multierror.Append(result, err)
	}
	if parsed.MaxExp, err = jsonInt(raw.MaxExp, "emax", ErrInvalidExponentRange); err != nil {
		result = multierror.Append(result, err)
	}
	if err := flatten(result); err != nil {
		return err
	}
	*p = parsed
	return nil
}

// jsonInt converts n into an int. Integral floats like 2.0 are accepted.
func jsonInt(n json.Number, name string, kind error) (int, error) {
	if n == "" {
		return 0, nil
	}
	if i, err := strconv.ParseInt(string(n), 10, 0); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s %s is not an integer", kind, name, n)
	}
	return int(f), nil
}

// flatten returns nil for no errors, the error itself for one error,
// and the whole list otherwise.
func flatten(result *multierror.Error) error {
	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	result.ErrorFormat = listFormat
	return result
}
