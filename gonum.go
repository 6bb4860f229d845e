package binplot

import (
	"fmt"
	"math"
	"time"

	"github.com/vdobler/binplot/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotSurface draws onto a gonum plot. Besides Surface it implements the
// surface needed by package timeaxis.
type PlotSurface struct {
	Plot  *plot.Plot
	Theme Theme

	grid *plotter.Grid
}

var _ Surface = (*PlotSurface)(nil)

// NewPlotSurface creates a surface on a new, empty plot.
func NewPlotSurface() (*PlotSurface, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	return &PlotSurface{Plot: p, Theme: DefaultTheme}, nil
}

func (s *PlotSurface) pointStyle() geom.PointStyle {
	ps := MergeStyles(s.Theme.PointStyle, DefaultTheme.PointStyle)
	es := MergeStyles(s.Theme.ErrorBarStyle, DefaultTheme.ErrorBarStyle)
	return geom.PointStyle{
		Glyph: draw.GlyphStyle{
			Color:  String2Color(ps["color"]),
			Radius: vg.Points(String2Float(ps["size"], 0, 50, 2.5)),
			Shape:  String2Glyph(ps["shape"]),
		},
		ErrorBar: geom.Solid(String2Color(es["color"]), vg.Points(String2Float(es["size"], 0, 20, 1))),
		CapWidth: vg.Points(String2Float(es["cap"], 0, 50, 6)),
	}
}

func (s *PlotSurface) lineStyle() draw.LineStyle {
	ls := MergeStyles(s.Theme.LineStyle, DefaultTheme.LineStyle)
	style := geom.Solid(String2Color(ls["color"]), vg.Points(String2Float(ls["size"], 0, 20, 1)))
	style.Dashes = String2Dashes(ls["linetype"])
	return style
}

func (s *PlotSurface) DrawPointsWithErrorBars(x, y, xerr, yerr []float64) error {
	pts, err := geom.NewErrorPoints(x, y, xerr, yerr)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return nil
	}
	plotters, err := pts.Plotters(s.pointStyle())
	if err != nil {
		return fmt.Errorf("binplot: %w", err)
	}
	s.Plot.Add(plotters...)
	return nil
}

func (s *PlotSurface) DrawLine(x0, y0, x1, y1 float64) error {
	line, err := geom.Segment(x0, y0, x1, y1, s.lineStyle())
	if err != nil {
		return fmt.Errorf("binplot: %w", err)
	}
	s.Plot.Add(line)
	return nil
}

// DrawPath draws a polyline through all points.
func (s *PlotSurface) DrawPath(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("binplot: %d x, %d y: %w", len(x), len(y), ErrShapeMismatch)
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("binplot: %w", err)
	}
	line.LineStyle = s.lineStyle()
	s.Plot.Add(line)
	return nil
}

func (s *PlotSurface) SetAxisLabels(xlabel, ylabel string) {
	if xlabel != "" {
		s.Plot.X.Label.Text = xlabel
	}
	if ylabel != "" {
		s.Plot.Y.Label.Text = ylabel
	}
}

// AxisRange reports the current axis ranges. An axis without data
// reports [0,1].
func (s *PlotSurface) AxisRange() (x, y Range) {
	return axisRange(s.Plot.X), axisRange(s.Plot.Y)
}

func axisRange(a plot.Axis) Range {
	if a.Min > a.Max {
		return Range{Min: 0, Max: 1}
	}
	return Range{Min: a.Min, Max: a.Max}
}

func (s *PlotSurface) SetAxisRange(x, y Range) {
	s.Plot.X.Min, s.Plot.X.Max = x.Min, x.Max
	s.Plot.Y.Min, s.Plot.Y.Max = y.Min, y.Max
}

// EnableGrid adds a grid to the plot once and toggles its visibility.
func (s *PlotSurface) EnableGrid(on bool) {
	if s.grid == nil {
		if !on {
			return
		}
		s.grid = plotter.NewGrid()
		s.Plot.Add(s.grid)
	}
	style := plotter.DefaultGridLineStyle
	if !on {
		style.Color = nil
	}
	s.grid.Vertical, s.grid.Horizontal = style, style
}

// SetTimeAxis labels the x axis ticks as times in loc, interpreting x as
// Unix seconds. The tick labels are rotated by rotation degrees.
func (s *PlotSurface) SetTimeAxis(layout string, loc *time.Location, rotation float64) {
	s.Plot.X.Tick.Marker = plot.TimeTicks{
		Format: layout,
		Time: func(t float64) time.Time {
			sec := int64(t)
			nsec := int64((t - float64(sec)) * 1e9)
			return time.Unix(sec, nsec).In(loc)
		},
	}
	s.Plot.X.Tick.Label.Rotation = rotation * math.Pi / 180
	if rotation != 0 {
		s.Plot.X.Tick.Label.XAlign = draw.XRight
	}
}

// Save writes the plot to file; the format is derived from the file
// extension (png, svg, pdf, ...).
func (s *PlotSurface) Save(width, height vg.Length, file string) error {
	return s.Plot.Save(width, height, file)
}
