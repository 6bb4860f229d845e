// Package geom provides plotter data types for the geoms of a binned
// scatter plot on top of gonum.org/v1/plot/plotter.
package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrorPoint is a point with symmetric x and y errors.
type ErrorPoint struct {
	X, Y       float64
	XErr, YErr float64
}

// ErrorPoints implements plotter.XYer, plotter.XErrorer and
// plotter.YErrorer.
type ErrorPoints []ErrorPoint

var (
	_ plotter.XYer     = ErrorPoints(nil)
	_ plotter.XErrorer = ErrorPoints(nil)
	_ plotter.YErrorer = ErrorPoints(nil)
)

// NewErrorPoints zips the four slices, which must have the same length.
func NewErrorPoints(x, y, xerr, yerr []float64) (ErrorPoints, error) {
	n := len(x)
	if len(y) != n || len(xerr) != n || len(yerr) != n {
		return nil, fmt.Errorf("geom: %d x, %d y, %d xerr, %d yerr values", n, len(y), len(xerr), len(yerr))
	}
	pts := make(ErrorPoints, n)
	for i := range pts {
		pts[i] = ErrorPoint{X: x[i], Y: y[i], XErr: xerr[i], YErr: yerr[i]}
	}
	return pts, nil
}

func (p ErrorPoints) Len() int                    { return len(p) }
func (p ErrorPoints) XY(i int) (float64, float64) { return p[i].X, p[i].Y }

// XError returns the low and high x error of point i.
func (p ErrorPoints) XError(i int) (float64, float64) { return p[i].XErr, p[i].XErr }

// YError returns the low and high y error of point i.
func (p ErrorPoints) YError(i int) (float64, float64) { return p[i].YErr, p[i].YErr }

// PointStyle describes how ErrorPoints are drawn.
type PointStyle struct {
	Glyph    draw.GlyphStyle
	ErrorBar draw.LineStyle
	CapWidth vg.Length
}

// Plotters returns the scatter of the points and their x and y error bars,
// ready to be added to a plot.
func (p ErrorPoints) Plotters(style PointStyle) ([]plot.Plotter, error) {
	scatter, err := plotter.NewScatter(p)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = style.Glyph

	xbars, err := plotter.NewXErrorBars(p)
	if err != nil {
		return nil, err
	}
	xbars.LineStyle = style.ErrorBar
	xbars.CapWidth = style.CapWidth

	ybars, err := plotter.NewYErrorBars(p)
	if err != nil {
		return nil, err
	}
	ybars.LineStyle = style.ErrorBar
	ybars.CapWidth = style.CapWidth

	return []plot.Plotter{xbars, ybars, scatter}, nil
}

// Segment returns a line plotter from (x0,y0) to (x1,y1).
func Segment(x0, y0, x1, y1 float64, style draw.LineStyle) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	line.LineStyle = style
	return line, nil
}

// Solid returns a solid line style.
func Solid(c color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: width}
}
