package binplot

import (
	"fmt"
	"math"
)

// Grob is a graphical object recorded by a Recorder.
type Grob interface {
	String() string
}

// -------------------------------------------------------------------------
// Grob Points

// GrobPoints are points with symmetric error bars.
type GrobPoints struct {
	X, Y       []float64
	XErr, YErr []float64
}

func (p GrobPoints) String() string {
	return fmt.Sprintf("Points(%d)", len(p.X))
}

// -------------------------------------------------------------------------
// Grob Line

// GrobLine is a straight line segment.
type GrobLine struct {
	X0, Y0, X1, Y1 float64
}

func (l GrobLine) String() string {
	return fmt.Sprintf("Line(%.4g,%.4g -- %.4g,%.4g)", l.X0, l.Y0, l.X1, l.Y1)
}

// -------------------------------------------------------------------------
// Scale

// Scale is a continuous position scale. Its domain is trained on the data
// drawn until the range is set explicitly.
type Scale struct {
	DomainMin float64
	DomainMax float64

	fixed *Range
}

// NewScale returns an untrained scale.
func NewScale() *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

// Train updates the domain to include all finite values.
func (s *Scale) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Range returns the displayed range: the fixed range if one was set,
// otherwise the trained domain expanded by 5% on either side.
func (s *Scale) Range() Range {
	if s.fixed != nil {
		return *s.fixed
	}
	min, max := s.DomainMin, s.DomainMax
	if min > max {
		return Range{Min: 0, Max: 1} // untrained
	}
	if min == max {
		min -= 1
		max += 1
	}
	expand := (max - min) * 0.05
	return Range{Min: min - expand, Max: max + expand}
}

// Fix pins the displayed range to r.
func (s *Scale) Fix(r Range) {
	s.fixed = &r
}

// -------------------------------------------------------------------------
// Recorder

// Recorder is a Surface which records all drawing operations as grobs.
// Its axes autoscale to the drawn data like the axes of a plot do, which
// makes it useful to check what a plot would look like without rendering.
type Recorder struct {
	Grobs          []Grob
	XLabel, YLabel string
	Grid           bool

	X, Y *Scale
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{X: NewScale(), Y: NewScale()}
}

func (r *Recorder) DrawPointsWithErrorBars(x, y, xerr, yerr []float64) error {
	n := len(x)
	if len(y) != n || len(xerr) != n || len(yerr) != n {
		return fmt.Errorf("recorder: %d x, %d y, %d xerr, %d yerr: %w",
			n, len(y), len(xerr), len(yerr), ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		r.X.Train(x[i]-xerr[i], x[i]+xerr[i])
		r.Y.Train(y[i]-yerr[i], y[i]+yerr[i])
	}
	r.Grobs = append(r.Grobs, GrobPoints{
		X:    append([]float64(nil), x...),
		Y:    append([]float64(nil), y...),
		XErr: append([]float64(nil), xerr...),
		YErr: append([]float64(nil), yerr...),
	})
	return nil
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64) error {
	r.X.Train(x0, x1)
	r.Y.Train(y0, y1)
	r.Grobs = append(r.Grobs, GrobLine{X0: x0, Y0: y0, X1: x1, Y1: y1})
	return nil
}

func (r *Recorder) SetAxisLabels(xlabel, ylabel string) {
	if xlabel != "" {
		r.XLabel = xlabel
	}
	if ylabel != "" {
		r.YLabel = ylabel
	}
}

func (r *Recorder) AxisRange() (x, y Range) {
	return r.X.Range(), r.Y.Range()
}

func (r *Recorder) SetAxisRange(x, y Range) {
	r.X.Fix(x)
	r.Y.Fix(y)
}

func (r *Recorder) EnableGrid(on bool) {
	r.Grid = on
}
