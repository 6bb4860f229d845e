package stat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Fit is a weighted least squares line y = Alpha + Beta*x together with
// the weighted Pearson correlation of the data it was fitted to.
type Fit struct {
	Alpha, Beta float64
	Rho         float64

	// XMean and YMean are the weighted means of the samples.
	XMean, YMean float64

	// Intercept is false if the line was forced through the origin,
	// in which case Alpha is 0.
	Intercept bool
}

// At evaluates the fitted line at x.
func (f Fit) At(x float64) float64 { return f.Alpha + f.Beta*x }

// centered holds the weighted means and the weighted centered second
// moments of a sample set.
type centered struct {
	xm, ym        float64
	sxx, syy, sxy float64
}

const varianceEps = 1e-28

func center(x, y, w []float64) (centered, error) {
	var c centered
	if len(x) != len(y) || len(w) != len(x) {
		return c, fmt.Errorf("len(x)=%d, len(y)=%d, len(weights)=%d: %w", len(x), len(y), len(w), ErrShapeMismatch)
	}
	if len(x) == 0 {
		return c, fmt.Errorf("no samples: %w", ErrData)
	}
	if floats.Sum(w) <= 0 {
		return c, fmt.Errorf("total weight is zero: %w", ErrData)
	}

	c.xm = gstat.Mean(x, w)
	c.ym = gstat.Mean(y, w)
	var xx, yy float64
	for i := range x {
		dx, dy := x[i]-c.xm, y[i]-c.ym
		c.sxx += w[i] * dx * dx
		c.syy += w[i] * dy * dy
		c.sxy += w[i] * dx * dy
		xx += w[i] * x[i] * x[i]
		yy += w[i] * y[i] * y[i]
	}
	// Round-off in the mean leaves a residual of order ulp² for a
	// constant variable; treat anything that small as no variance.
	if c.sxx <= varianceEps*xx {
		return c, fmt.Errorf("x has zero variance: %w", ErrData)
	}
	if c.syy <= varianceEps*yy {
		return c, fmt.Errorf("y has zero variance: %w", ErrData)
	}
	return c, nil
}

func (c centered) rho() float64 {
	return c.sxy / math.Sqrt(c.sxx*c.syy)
}

// Correlation returns the weighted Pearson correlation coefficient of x
// and y. A nil w means uniform weights. It fails with ErrData if either
// variable is constant or the total weight is zero.
func Correlation(x, y, w []float64) (float64, error) {
	if w == nil {
		w = ones(len(x))
	}
	c, err := center(x, y, w)
	if err != nil {
		return math.NaN(), err
	}
	return c.rho(), nil
}

// LinearFit fits a weighted least squares line to all samples. With
// intercept the closed form Beta = Σw·dx·dy / Σw·dx², Alpha = ȳ - Beta·x̄
// is used; without, the line passes through the origin and
// Beta = Σw·x·y / Σw·x². A nil w means uniform weights.
func LinearFit(x, y, w []float64, intercept bool) (Fit, error) {
	if w == nil {
		w = ones(len(x))
	}
	c, err := center(x, y, w)
	if err != nil {
		return Fit{}, err
	}

	fit := Fit{
		Rho:       c.rho(),
		XMean:     c.xm,
		YMean:     c.ym,
		Intercept: intercept,
	}
	if intercept {
		fit.Beta = c.sxy / c.sxx
		fit.Alpha = c.ym - fit.Beta*c.xm
		return fit, nil
	}

	wx := make([]float64, len(x))
	floats.MulTo(wx, w, x)
	fit.Beta = floats.Dot(wx, y) / floats.Dot(wx, x)
	return fit, nil
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
