package sonify

import (
	"fmt"
	"sort"

	"FinSound/internal/domain/models"
)

// MaxSamples is the number of representative values a series is reduced to.
const MaxSamples = 10

// Reduce picks at most MaxSamples values from series. The first, last, minimum
// and maximum elements are always kept; the free slots are filled with
// near-equidistant indices. The result preserves chronological order.
func Reduce(series []float64) ([]float64, error) {
	n := len(series)
	if n == 0 {
		return nil, models.ErrEmptyInput
	}
	if n <= MaxSamples {
		out := make([]float64, n)
		copy(out, series)
		return out, nil
	}

	idx, err := ReduceIndices(series)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = series[j]
	}
	return out, nil
}

// ReduceIndices returns the ascending input indices Reduce selects.
func ReduceIndices(series []float64) ([]int, error) {
	n := len(series)
	if n == 0 {
		return nil, models.ErrEmptyInput
	}
	if n <= MaxSamples {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	minIdx, maxIdx := extrema(series)
	essential := uniqueSorted([]int{0, minIdx, maxIdx, n - 1})
	if len(essential) > 4 {
		return nil, fmt.Errorf("reduce: essential set has %d members", len(essential))
	}

	remaining := MaxSamples - len(essential)
	if remaining <= 0 {
		return essential[:MaxSamples], nil
	}

	chosen := make(map[int]bool, MaxSamples)
	for _, i := range essential {
		chosen[i] = true
	}

	step := n / (remaining + 1)
	if step < 1 {
		step = 1
	}
	all := append([]int(nil), essential...)
	for i := step; i < n && remaining > 0; i += step {
		if chosen[i] {
			continue
		}
		chosen[i] = true
		all = append(all, i)
		remaining--
	}
	// grid collided with essential indices; take the lowest free ones
	for i := 1; i < n && remaining > 0; i++ {
		if chosen[i] {
			continue
		}
		chosen[i] = true
		all = append(all, i)
		remaining--
	}

	sort.Ints(all)
	if len(all) > MaxSamples {
		all = all[:MaxSamples]
	}
	return all, nil
}

// extrema returns the first index of the minimum and of the maximum.
func extrema(s []float64) (minIdx, maxIdx int) {
	for i := 1; i < len(s); i++ {
		if s[i] < s[minIdx] {
			minIdx = i
		}
		if s[i] > s[maxIdx] {
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}

func uniqueSorted(in []int) []int {
	sort.Ints(in)
	out := in[:0]
	for i, v := range in {
		if i > 0 && v == in[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}
