package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base uint64
		exp  int
		res  uint64
		ok   bool
	}{
		{2, 0, 1, true},
		{0, 0, 1, true},
		{0, 3, 0, true},
		{1, 1000, 1, true},
		{2, 10, 1024, true},
		{3, 4, 81, true},
		{10, 19, 10000000000000000000, true},
		{10, 20, 0, false},
		{2, 63, 1 << 63, true},
		{2, 64, 0, false},
		{7, -1, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Pow(test.base, test.exp)
			a.Equal(test.ok, ok)
			a.Equal(test.res, res)
		})
	}
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res uint64
		ok        bool
	}{
		{0, math.MaxUint64, 0, true},
		{3, 5, 15, true},
		{math.MaxUint64, 1, math.MaxUint64, true},
		{math.MaxUint64, 2, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Mul(test.a, test.b)
			a.Equal(test.ok, ok)
			if ok {
				a.Equal(test.res, res)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		value, base uint64
		n           int
	}{
		{0, 10, 1},
		{9, 10, 1},
		{10, 10, 2},
		{math.MaxUint64, 10, 20},
		{1, 2, 1},
		{8, 2, 4},
		{math.MaxUint64, 2, 64},
		{26, 3, 3},
		{27, 3, 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.n, Digits(test.value, test.base))
		})
	}
}

func TestToDigits(t *testing.T) {
	a := assert.New(t)
	a.Equal([]int{1, 0, 1}, ToDigits(5, 2, 3))
	a.Equal([]int{0, 0, 1, 0, 1}, ToDigits(5, 2, 5))
	a.Equal([]int{0, 1}, ToDigits(5, 2, 2))
	a.Equal([]int{2, 1, 0}, ToDigits(21, 3, 3))
	a.Nil(ToDigits(5, 10, 0))
}

func TestAbsInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, AbsInt(0))
	a.Equal(5, AbsInt(-5))
	a.Equal(5, AbsInt(5))
}

func BenchmarkPow(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		v, _ := Pow(3, i%40)
		dummy += v
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy%1000), "dummy_metric")
}
