// Package mathutil contains integer helpers for positional number systems
// with an arbitrary radix.
package mathutil

import (
	"math/bits"
	"unsafe"
)

// Pow returns base^exp and true, or false if the result overflows uint64.
func Pow(base uint64, exp int) (uint64, bool) {
	if exp < 0 {
		return 0, false
	}
	result := uint64(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = Mul(result, base); !ok {
				return 0, false
			}
		}
		if exp > 1 {
			var ok bool
			if base, ok = Mul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// Mul returns a*b and true, or false if the product does not fit 64 bits.
func Mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// Digits returns the number of radix-'base' digits needed to represent 'value'.
func Digits(value, base uint64) int {
	if value == 0 {
		return 1
	}
	if base == 2 {
		return BinaryDigits(value)
	}
	var n int
	for ; value > 0; value /= base {
		n++
	}
	return n
}

// ToDigits splits value into exactly 'width' radix-'base' digits,
// most significant first. Digits above 'width' are dropped.
func ToDigits(value, base uint64, width int) []int {
	if width <= 0 {
		return nil
	}
	result := make([]int, width)
	for i := width - 1; i >= 0; i-- {
		result[i] = int(value % base)
		value /= base
	}
	return result
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
