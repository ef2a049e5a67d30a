package floatset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		p    Params
		errs []error
	}{
		{Params{2, 1, 0, 1}, nil},
		{Params{16, 4, -10, 10}, nil},
		{Params{1, 1, 0, 1}, []error{ErrInvalidRadix}},
		{Params{2, 0, 0, 1}, []error{ErrInvalidPrecision}},
		{Params{2, 1, 0, 0}, []error{ErrInvalidExponentRange}},
		{Params{0, 0, 0, 0}, []error{ErrInvalidRadix, ErrInvalidPrecision, ErrInvalidExponentRange}},
		{Params{2, 1, -MaxExpMagnitude, MaxExpMagnitude}, nil},
		{Params{2, 1, -MaxExpMagnitude - 1, 0}, []error{ErrInvalidExponentRange}},
		{Params{2, 1, 0, MaxExpMagnitude + 1}, []error{ErrInvalidExponentRange}},
		{Params{2, 1, math.MinInt, math.MaxInt}, []error{ErrInvalidExponentRange}},
	}
	all := []error{ErrInvalidRadix, ErrInvalidPrecision, ErrInvalidExponentRange}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			err := test.p.Validate()
			if len(test.errs) == 0 {
				a.NoError(err)
				return
			}
			for _, target := range all {
				expected := false
				for _, e := range test.errs {
					expected = expected || e == target
				}
				a.Equal(expected, errors.Is(err, target), target)
			}
		})
	}
}

func TestParamsCount(t *testing.T) {
	a := assert.New(t)
	n, ok := Params{2, 3, -1, 2}.Count()
	a.True(ok)
	a.EqualValues(9, n)

	n, ok = Params{10, 3, -1, 2}.MantissaCount(false)
	a.True(ok)
	a.EqualValues(3000, n)

	n, ok = Params{10, 3, -1, 2}.MantissaCount(true)
	a.True(ok)
	a.EqualValues(2700, n)

	_, ok = Params{10, 20, 0, 1}.MantissaCount(false)
	a.False(ok)
}

func TestParamsUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data string
		p    Params
		errs []error
	}{
		{`{"radix":2,"precision":3,"emin":-1,"emax":2}`, Params{2, 3, -1, 2}, nil},
		{`{"radix":2.0,"precision":3e0,"emin":-1,"emax":2}`, Params{2, 3, -1, 2}, nil},
		{`{"radix":10}`, Params{Radix: 10}, nil},
		{`{"radix":2.5,"precision":3,"emin":-1,"emax":2}`, Params{}, []error{ErrInvalidRadix}},
		{`{"radix":2,"precision":1.5,"emin":-0.5,"emax":2}`, Params{}, []error{ErrInvalidPrecision, ErrInvalidExponentRange}},
		{`{"radix":2,"precision":1,"emin":0,"emax":1e300}`, Params{}, []error{ErrInvalidExponentRange}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var p Params
			err := json.Unmarshal([]byte(test.data), &p)
			if len(test.errs) == 0 {
				if a.NoError(err) {
					a.Equal(test.p, p)
				}
				return
			}
			require.Error(t, err)
			for _, e := range test.errs {
				a.True(errors.Is(err, e), err)
			}
			a.Equal(Params{}, p)
		})
	}
}

func TestParamsUnmarshalJSONMessages(t *testing.T) {
	a := assert.New(t)
	var p Params
	a.EqualError(json.Unmarshal([]byte(`{"radix":2.5}`), &p), "floatset: invalid radix: radix 2.5 is not an integer")
	a.EqualError(json.Unmarshal([]byte(`{"radix":2.5,"emax":0.1}`), &p),
		"floatset: invalid radix: radix 2.5 is not an integer; floatset: invalid exponent range: emax 0.1 is not an integer")
	a.Error(json.Unmarshal([]byte(`{"radix":"two"}`), &p))
	a.Error(json.Unmarshal([]byte(`[2,3]`), &p))
}

func TestParamsValidateBoundMessages(t *testing.T) {
	a := assert.New(t)
	a.EqualError(Params{2, 1, math.MinInt, 0}.Validate(),
		"floatset: invalid exponent range: bound -9223372036854775808 is out of [-2147483647, 2147483647]")
	a.EqualError(Params{2, 1, -MaxExpMagnitude - 1, MaxExpMagnitude + 1}.Validate(),
		"floatset: invalid exponent range: bound -2147483648 is out of [-2147483647, 2147483647]; "+
			"floatset: invalid exponent range: bound 2147483648 is out of [-2147483647, 2147483647]")
}

func TestParamsUnmarshalJSONNull(t *testing.T) {
	a := assert.New(t)
	p := Params{2, 3, -1, 2}
	if a.NoError(json.Unmarshal([]byte(`null`), &p)) {
		a.Equal(Params{2, 3, -1, 2}, p)
	}
	holder := struct {
		P Params `json:"params"`
	}{P: p}
	if a.NoError(json.Unmarshal([]byte(`{"params":null}`), &holder)) {
		a.Equal(p, holder.P)
	}
}
