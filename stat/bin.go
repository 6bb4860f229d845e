package stat

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// BinKind selects how bin boundaries are placed.
type BinKind string

const (
	// Quantiles places boundaries at evenly spaced percentiles of x so
	// that every bin holds about the same number of samples.
	Quantiles BinKind = "quantiles"

	// Uniform places boundaries at evenly spaced values between min(x)
	// and max(x).
	Uniform BinKind = "uniform"
)

// ParseBinKind converts s to a BinKind.
func ParseBinKind(s string) (BinKind, error) {
	switch k := BinKind(s); k {
	case Quantiles, Uniform:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedBinningMode)
}

// Boundaries computes the bins-1 interior boundaries partitioning the real
// line into bins intervals. The boundaries are non-decreasing; for a
// constant x they all coincide and every sample lands in the same bin.
func Boundaries(x []float64, bins int, kind BinKind) ([]float64, error) {
	if bins < 1 {
		return nil, fmt.Errorf("bins=%d: %w", bins, ErrBinCount)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no samples to bin: %w", ErrData)
	}

	boundaries := make([]float64, bins-1)
	switch kind {
	case Quantiles:
		sorted := make([]float64, len(x))
		copy(sorted, x)
		sort.Float64s(sorted)
		for k := range boundaries {
			boundaries[k] = Quantile(sorted, float64(k+1)/float64(bins))
		}
	case Uniform:
		min, max := floats.Min(x), floats.Max(x)
		step := (max - min) / float64(bins)
		for k := range boundaries {
			boundaries[k] = min + float64(k+1)*step
		}
	default:
		return nil, fmt.Errorf("%q: %w", string(kind), ErrUnsupportedBinningMode)
	}
	return boundaries, nil
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the sorted slice,
// interpolating linearly between the two closest order statistics
// (Hyndman and Fan, type 7).
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	if lo < 0 {
		return sorted[0]
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Digitize assigns a bin index to each value in x. The index of v is the
// number of boundaries <= v: bin 0 is (-inf, b[0]), bin i is [b[i-1], b[i])
// and the last bin is [b[len(b)-1], +inf).
func Digitize(x, boundaries []float64) []int {
	ix := make([]int, len(x))
	for i, v := range x {
		ix[i] = sort.Search(len(boundaries), func(j int) bool { return boundaries[j] > v })
	}
	return ix
}
