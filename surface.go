package binplot

// Range is a closed interval [Min, Max] of data coordinates on one axis.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Surface is a 2-D drawing target like a single panel of a plot.
//
// Adding data to a surface may grow its axis ranges; AxisRange reports the
// ranges currently displayed and SetAxisRange pins them. A Surface is not
// safe for concurrent use.
type Surface interface {
	// DrawPointsWithErrorBars draws the points (x[i], y[i]) with
	// symmetric error bars of half-width xerr[i] and yerr[i].
	DrawPointsWithErrorBars(x, y, xerr, yerr []float64) error

	// DrawLine draws a straight line from (x0,y0) to (x1,y1).
	DrawLine(x0, y0, x1, y1 float64) error

	// SetAxisLabels sets the axis titles. An empty label leaves the
	// corresponding title unchanged.
	SetAxisLabels(xlabel, ylabel string)

	AxisRange() (x, y Range)
	SetAxisRange(x, y Range)

	EnableGrid(on bool)
}
