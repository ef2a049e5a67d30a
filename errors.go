package floatset

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidRadix is returned for a radix below 2 or a non-integer radix.
	ErrInvalidRadix = errors.New("floatset: invalid radix")
	// ErrInvalidPrecision is returned for a precision below 1 or a non-integer precision.
	ErrInvalidPrecision = errors.New("floatset: invalid precision")
	// ErrInvalidExponentRange is returned when emin >= emax or a bound is not an integer.
	ErrInvalidExponentRange = errors.New("floatset: invalid exponent range")
	// ErrTooLarge is returned when the result would hold more than MaxValues elements.
	ErrTooLarge = errors.New("floatset: too many values")
	// ErrOutOfRange is returned when a number lies outside the representable range.
	ErrOutOfRange = errors.New("floatset: number out of range")
)

// listFormat renders aggregated validation errors on a single line.
func listFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
