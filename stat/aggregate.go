package stat

import "math"

// BinnedData is the summary of one retained bin.
type BinnedData struct {
	Bin   int     // index of the bin in [0, bins)
	N     int     // number of samples in the bin
	Count float64 // total weight of the bin

	XMean, YMean float64
	XErr, YErr   float64 // weighted standard error of the means
}

// MinBinWeight is the total weight a bin must exceed to be reported.
// A single unweighted sample cannot support a variance estimate.
const MinBinWeight = 1

// Aggregate accumulates the weighted moments of x and y per bin index and
// returns the bins whose total weight exceeds MinBinWeight, in ascending
// bin order. ix, x, y and w must have the same length and every ix[i]
// must lie in [0, bins).
func Aggregate(ix []int, bins int, x, y, w []float64) []BinnedData {
	type moments struct {
		n                   int
		w, wx, wy, wxx, wyy float64
	}
	acc := make([]moments, bins)
	for i, b := range ix {
		m := &acc[b]
		wi := w[i]
		m.n++
		m.w += wi
		m.wx += wi * x[i]
		m.wy += wi * y[i]
		m.wxx += wi * x[i] * x[i]
		m.wyy += wi * y[i] * y[i]
	}

	result := make([]BinnedData, 0, bins)
	for b, m := range acc {
		if m.w <= MinBinWeight {
			continue
		}
		xm, ym := m.wx/m.w, m.wy/m.w
		xvar := math.Max(0, m.wxx/m.w-xm*xm)
		yvar := math.Max(0, m.wyy/m.w-ym*ym)
		result = append(result, BinnedData{
			Bin:   b,
			N:     m.n,
			Count: m.w,
			XMean: xm,
			YMean: ym,
			XErr:  math.Sqrt(xvar / m.w),
			YErr:  math.Sqrt(yvar / m.w),
		})
	}
	return result
}
