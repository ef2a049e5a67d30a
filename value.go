// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatset

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/floatset/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1.0"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as floats, like `1`.
	JSONModeFloat
	// JSONModeDBE marshals values with sign, digit, base and exponent, like `{"s":0,"d":2,"b":3,"e":-1}`.
	JSONModeDBE
)

// Value is a single element of a floating-point set:
//
//	(-1)^Neg * Digit * Base^Exp
//
// Values are produced by the enumerators and never change.
// A Value with a negative exponent is considered real, otherwise it's an integer.
// Both forms compare equal if they represent the same number.
type Value struct {
	Neg   bool
	Digit int64
	Base  int64
	Exp   int
}

type jsonValue struct {
	S int   `json:"s"`
	D int64 `json:"d"`
	B int64 `json:"b"`
	E int   `json:"e"`
}

// IsReal returns true, if v was produced with a negative power of its base.
func (v Value) IsReal() bool {
	return v.Exp < 0
}

// IsZero returns true, if v represents 0.
func (v Value) IsZero() bool {
	return v.Digit == 0
}

// Negate returns -v.
func (v Value) Negate() Value {
	v.Neg = !v.Neg
	return v
}

// Rat returns the exact value of v.
func (v Value) Rat() *big.Rat {
	num := big.NewInt(v.Digit)
	pow := new(big.Int).Exp(big.NewInt(v.Base), big.NewInt(int64(mathutil.AbsInt(v.Exp))), nil)
	result := new(big.Rat)
	if v.Exp >= 0 {
		result.SetInt(num.Mul(num, pow))
	} else {
		result.SetFrac(num, pow)
	}
	if v.Neg {
		result.Neg(result)
	}
	return result
}

// Float64 returns the nearest float64 value.
func (v Value) Float64() float64 {
	if v.IsZero() {
		if v.Neg && v.IsReal() {
			return math.Copysign(0, -1)
		}
		return 0
	}
	f, _ := v.Rat().Float64()
	return f
}

// Decimal returns v as a decimal number.
// Integers are exact, other values are rounded to 'places' decimal places.
func (v Value) Decimal(places int32) decimal.Decimal {
	r := v.Rat()
	num := decimal.NewFromBigInt(r.Num(), 0)
	if r.IsInt() {
		return num
	}
	return num.DivRound(decimal.NewFromBigInt(r.Denom(), 0), places)
}

// Fixed returns v as a fixed-point number with 7 decimal places.
// Values beyond the range of fixed.Fixed produce fixed.NaN.
func (v Value) Fixed() fixed.Fixed {
	return fixed.NewF(v.Float64())
}

// Sign returns -1 if v < 0, 0 if v = 0, 1 if v > 0.
func (v Value) Sign() int {
	if v.IsZero() {
		return 0
	}
	if v.Neg {
		return -1
	}
	return 1
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	return v.Rat().Cmp(other.Rat())
}

// Eq returns true, if both values represent the same number.
func (v Value) Eq(other Value) bool {
	if v == other {
		return true
	}
	return v.Cmp(other) == 0
}

// Digits splits v's digit into n radix-Base digits, most significant first.
// If n <= 0, the minimum number of digits is used.
func (v Value) Digits(n int) []int {
	if v.Base < 2 {
		return []int{int(v.Digit)}
	}
	d := uint64(v.Digit)
	if n <= 0 {
		n = mathutil.Digits(d, uint64(v.Base))
	}
	return mathutil.ToDigits(d, uint64(v.Base), n)
}

// String returns a string representation of the value.
// Integers are printed exactly, reals in the shortest form that keeps at least one fractional digit.
func (v Value) String() string {
	if !v.IsReal() {
		return v.Rat().Num().String()
	}
	s := strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	sign := ""
	if v.Neg {
		sign = "-"
	}
	return v.String() + fmt.Sprintf(" {%s%d*%d^%d}", sign, v.Digit, v.Base, v.Exp)
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode)
}

func (v Value) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeFloat:
		f := v.Float64()
		if math.IsInf(f, 0) { // beyond float64, only huge integers get here.
			return []byte(v.Rat().Num().String()), nil
		}
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	case JSONModeDBE:
		jv := jsonValue{D: v.Digit, B: v.Base, E: v.Exp}
		if v.Neg {
			jv.S = 1
		}
		return json.Marshal(jv)
	default: // marshal as a string
		return []byte(strconv.Quote(v.String())), nil
	}
}

// UnmarshalJSON unmarshals an object in JSONModeDBE form into a value.
// A json null leaves v unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	if data[0] != '{' {
		return fmt.Errorf("cannot unmarshal %s into a value: an object is expected", data)
	}
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	if jv.B < 1 {
		return fmt.Errorf("bad base %d", jv.B)
	}
	if jv.D < 0 {
		return fmt.Errorf("bad digit %d", jv.D)
	}
	*v = Value{Neg: jv.S != 0, Digit: jv.D, Base: jv.B, Exp: jv.E}
	return nil
}
