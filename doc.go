// Package binplot draws binned scatter plots for exploratory data analysis.
//
// A binned scatter plot of y against x partitions the x values into bins,
// either at quantiles of x (every bin holds about the same number of
// samples) or uniformly between min(x) and max(x), and shows for every bin
// the weighted mean of x and y together with the standard errors of these
// means. A weighted least squares line fitted to all samples and the
// weighted Pearson correlation are overlaid:
//
//	s, _ := binplot.NewPlotSurface()
//	sum, err := binplot.BinnedPlot(s, height, weight, binplot.Options{
//		Bins:   10,
//		XLabel: "Height [m]",
//		YLabel: "Weight [kg]",
//	})
//	...
//	s.Save(6*vg.Inch, 4*vg.Inch, "binned.png")
//
// The numerics live in package stat, the drawing goes through the Surface
// interface. PlotSurface draws onto a gonum.org/v1/plot Plot, Recorder just
// records what would be drawn.
//
//
// Data
//
// Columns extracts the x, y and weight columns from a data frame which can
// be represented in two different ways: Either as "slice of measurements"
// or as "collection of slices".
//
// "Slice of measurements" are of the following style
//
//	var DataSOM []Measurement
//	type Measurement struct {
//		Height float64
//		Weight float64
//		Age    int
//	}
//
// "Collection of slices" are structured like this:
//
//	var DataCOS Measurements
//	type Measurements struct {
//		Height []float64
//		Weight []float64
//		Age    []int
//	}
//
// Your data frame need not contain all data you want to plot as a field.
// By providing appropriate methods you can have values computed. For slice
// of measurements style data frames just provide a method without
// parameters; in the collection of slices style the method takes the index
// as parameter:
//
//	func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//	func (m Measurements) BMI(i int) float64 { return m.Weight[i] / (m.Height[i] * m.Height[i]) }
package binplot
