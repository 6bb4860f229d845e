package binplot

import (
	"errors"
	"fmt"

	"github.com/cyclopcam/logs"
	"github.com/vdobler/binplot/stat"
)

// Errors returned by BinnedPlot, see package stat.
var (
	ErrShapeMismatch          = stat.ErrShapeMismatch
	ErrUnsupportedBinningMode = stat.ErrUnsupportedBinningMode
	ErrData                   = stat.ErrData
	ErrBinCount               = stat.ErrBinCount
)

// Options controls BinnedPlot. The zero value is usable and equivalent to
// DefaultOptions.
type Options struct {
	// Bins is the number of bins; 0 means 20.
	Bins int

	// Kind determines the placement of the bin boundaries;
	// "" means stat.Quantiles.
	Kind stat.BinKind

	// Weights are optional non-negative sample weights. A nil Weights
	// gives every sample weight 1.
	Weights []float64

	// XLabel is shown on top of the fit summary below the x axis.
	// YLabel is set only if non-empty.
	XLabel, YLabel string

	// NoRegression suppresses the regression line; the correlation is
	// still reported.
	NoRegression bool

	// ThroughOrigin forces the regression line through (0,0).
	ThroughOrigin bool

	// Log receives one debug line per call if non-nil.
	Log logs.Log
}

// DefaultOptions are the options used for zero fields of Options.
var DefaultOptions = Options{
	Bins: 20,
	Kind: stat.Quantiles,
}

func (o Options) withDefaults() Options {
	if o.Bins == 0 {
		o.Bins = DefaultOptions.Bins
	}
	if o.Kind == "" {
		o.Kind = DefaultOptions.Kind
	}
	return o
}

// Summary describes what BinnedPlot drew.
type Summary struct {
	// Boundaries are the interior bin boundaries.
	Boundaries []float64

	// Bins are the retained bins in ascending order.
	Bins []stat.BinnedData

	// Fit is computed from all retained samples, not from the bins.
	Fit stat.Fit

	// XLabel is the x axis title set on the surface.
	XLabel string

	// Kept and Dropped count the samples surviving and failing
	// sanitization.
	Kept, Dropped int
}

// BinnedPlot partitions x into bins, draws the weighted mean of x and y in
// every sufficiently populated bin with standard error bars onto s, and
// overlays the weighted least squares line fitted to all samples. The fit
// equation and the weighted correlation are written below the x axis.
//
// Pairs where x or y is not finite are ignored. All statistics are
// computed before the first drawing call: if an error is returned, s has
// not been touched.
func BinnedPlot(s Surface, x, y []float64, opts Options) (*Summary, error) {
	if s == nil {
		return nil, errors.New("binplot: nil surface")
	}
	opts = opts.withDefaults()

	// Clean input. (Step 1)
	xs, ys, ws, err := stat.Sanitize(x, y, opts.Weights)
	if err != nil {
		return nil, err
	}

	// Bin boundaries and assignment to bins. (Step 2)
	boundaries, err := stat.Boundaries(xs, opts.Bins, opts.Kind)
	if err != nil {
		return nil, err
	}
	ix := stat.Digitize(xs, boundaries)

	// Per bin means and errors. (Step 3)
	bins := stat.Aggregate(ix, opts.Bins, xs, ys, ws)

	// Correlation and regression over all samples. (Steps 4 and 5)
	fit, err := stat.LinearFit(xs, ys, ws, !opts.ThroughOrigin)
	if err != nil {
		return nil, err
	}

	regression := !opts.NoRegression
	summary := &Summary{
		Boundaries: boundaries,
		Bins:       bins,
		Fit:        fit,
		XLabel:     axisLabel(opts.XLabel, Equation(fit, regression)),
		Kept:       len(xs),
		Dropped:    len(x) - len(xs),
	}
	if opts.Log != nil {
		opts.Log.Debugf("binplot: kept %d of %d samples, %d of %d bins retained, %s",
			summary.Kept, len(x), len(bins), opts.Bins, Equation(fit, regression))
	}

	// Render to the surface. (Step 6)
	if err := drawBinned(s, bins, fit, regression, summary.XLabel, opts.YLabel); err != nil {
		return summary, err
	}
	return summary, nil
}

func drawBinned(s Surface, bins []stat.BinnedData, fit stat.Fit, regression bool, xlabel, ylabel string) error {
	n := len(bins)
	x, y := make([]float64, n), make([]float64, n)
	xerr, yerr := make([]float64, n), make([]float64, n)
	for i, b := range bins {
		x[i], y[i] = b.XMean, b.YMean
		xerr[i], yerr[i] = b.XErr, b.YErr
	}
	if err := s.DrawPointsWithErrorBars(x, y, xerr, yerr); err != nil {
		return fmt.Errorf("binplot: drawing bins: %w", err)
	}

	if regression {
		// The line spans the current x range and must not change the
		// displayed ranges.
		xr, yr := s.AxisRange()
		if err := s.DrawLine(xr.Min, fit.At(xr.Min), xr.Max, fit.At(xr.Max)); err != nil {
			return fmt.Errorf("binplot: drawing regression line: %w", err)
		}
		s.SetAxisRange(xr, yr)
	}

	s.SetAxisLabels(xlabel, ylabel)
	s.EnableGrid(true)
	return nil
}
