package floatset

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Bin is a number and the count of its occurrences.
type Bin struct {
	Value Value
	Count int
}

// Histogram groups numerically equal values.
// The first occurrence of each number represents its bin.
// Bins are sorted in ascending order.
func Histogram(values []Value) []Bin {
	bins := make(map[string]*Bin, len(values))
	for _, v := range values {
		key := v.Rat().RatString()
		if bin, found := bins[key]; found {
			bin.Count++
			continue
		}
		bins[key] = &Bin{Value: v, Count: 1}
	}
	sorted := maps.Values(bins)
	slices.SortFunc(sorted, func(a, b *Bin) bool {
		return a.Value.Cmp(b.Value) < 0
	})
	result := make([]Bin, len(sorted))
	for i, bin := range sorted {
		result[i] = *bin
	}
	return result
}

// Distinct returns numerically unique values sorted in ascending order.
func Distinct(values []Value) []Value {
	bins := Histogram(values)
	result := make([]Value, len(bins))
	for i, bin := range bins {
		result[i] = bin.Value
	}
	return result
}
