// Package stat contains the numerical parts of a binned scatter plot:
// cleaning of the input series, quantile and uniform binning, per-bin
// weighted moments and a weighted linear fit with Pearson correlation.
//
// All functions are pure. Weights are optional everywhere; a nil weight
// slice means every sample has weight 1.
package stat

import (
	"fmt"
	"math"
)

// Sanitize drops every sample where x or y (or the weight, if weights are
// given) is NaN or infinite. The returned slices are freshly allocated
// and have identical length. If w is nil the returned weights are all 1.
//
// A negative weight or an empty result is reported as ErrData.
func Sanitize(x, y, w []float64) (xs, ys, ws []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrShapeMismatch)
	}
	if w != nil && len(w) != len(x) {
		return nil, nil, nil, fmt.Errorf("len(x)=%d, len(weights)=%d: %w", len(x), len(w), ErrShapeMismatch)
	}

	xs = make([]float64, 0, len(x))
	ys = make([]float64, 0, len(y))
	ws = make([]float64, 0, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		wi := 1.0
		if w != nil {
			wi = w[i]
			if !finite(wi) {
				continue
			}
			if wi < 0 {
				return nil, nil, nil, fmt.Errorf("negative weight %g at index %d: %w", wi, i, ErrData)
			}
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
		ws = append(ws, wi)
	}

	if len(xs) == 0 {
		return nil, nil, nil, fmt.Errorf("no finite samples among %d: %w", len(x), ErrData)
	}
	return xs, ys, ws, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
