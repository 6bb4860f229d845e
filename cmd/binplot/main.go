package main

import (
	"fmt"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/vdobler/binplot"
	"github.com/vdobler/binplot/internal/csvdata"
	"github.com/vdobler/binplot/stat"
	"github.com/vdobler/binplot/timeaxis"
	"gonum.org/v1/plot/vg"
)

func main() {
	parser := argparse.NewParser("binplot", "Binned scatter plot of two CSV columns")
	input := parser.String("i", "input", &argparse.Options{Help: "CSV file with a header row", Required: true})
	xcol := parser.String("x", "xcol", &argparse.Options{Help: "Column of the predictor", Required: false, Default: ""})
	ycol := parser.String("y", "ycol", &argparse.Options{Help: "Column of the response", Required: true})
	wcol := parser.String("w", "weights", &argparse.Options{Help: "Column of non-negative sample weights", Required: false, Default: ""})
	bins := parser.Int("", "bins", &argparse.Options{Help: "Number of bins", Required: false, Default: binplot.DefaultOptions.Bins})
	kind := parser.String("", "kind", &argparse.Options{Help: "Bin placement: quantiles or uniform", Required: false, Default: string(binplot.DefaultOptions.Kind)})
	xlabel := parser.String("", "xlabel", &argparse.Options{Help: "Label of the x axis", Required: false, Default: ""})
	ylabel := parser.String("", "ylabel", &argparse.Options{Help: "Label of the y axis", Required: false, Default: ""})
	noRegression := parser.Flag("", "no-regression", &argparse.Options{Help: "Do not draw the regression line", Default: false})
	throughOrigin := parser.Flag("", "through-origin", &argparse.Options{Help: "Fit the regression line without intercept", Default: false})
	timeCol := parser.String("t", "time", &argparse.Options{Help: "Column of Unix seconds; plot y as a time series instead", Required: false, Default: ""})
	tz := parser.String("", "tz", &argparse.Options{Help: "Timezone of the time axis", Required: false, Default: timeaxis.DefaultZone})
	output := parser.String("o", "output", &argparse.Options{Help: "Output image (png, svg, pdf)", Required: false, Default: "binplot.png"})
	width := parser.Float("", "width", &argparse.Options{Help: "Image width in inches", Required: false, Default: 6.0})
	height := parser.Float("", "height", &argparse.Options{Help: "Image height in inches", Required: false, Default: 4.0})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "binplot: %v\n", err)
		os.Exit(1)
	}

	s, err := binplot.NewPlotSurface()
	if err == nil {
		if *timeCol != "" {
			err = timeSeries(s, *input, *timeCol, *ycol, *tz)
		} else {
			err = binned(logger, s, *input, *xcol, *ycol, *wcol, binplot.Options{
				Bins:          *bins,
				XLabel:        *xlabel,
				YLabel:        *ylabel,
				NoRegression:  *noRegression,
				ThroughOrigin: *throughOrigin,
				Log:           logger,
			}, *kind)
		}
	}
	if err == nil {
		err = s.Save(vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch, *output)
	}
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("Wrote %s", *output)
}

func binned(log logs.Log, s *binplot.PlotSurface, file, xcol, ycol, wcol string, opts binplot.Options, kind string) error {
	if xcol == "" {
		return fmt.Errorf("need an x column (-x) or a time column (-t)")
	}
	k, err := stat.ParseBinKind(kind)
	if err != nil {
		return err
	}
	opts.Kind = k

	tab, err := csvdata.ReadFile(file)
	if err != nil {
		return err
	}
	x, err := tab.Float(xcol)
	if err != nil {
		return err
	}
	y, err := tab.Float(ycol)
	if err != nil {
		return err
	}
	if wcol != "" {
		if opts.Weights, err = tab.Float(wcol); err != nil {
			return err
		}
	}
	if opts.XLabel == "" {
		opts.XLabel = xcol
	}
	if opts.YLabel == "" {
		opts.YLabel = ycol
	}

	sum, err := binplot.BinnedPlot(s, x, y, opts)
	if err != nil {
		return err
	}
	if sum.Dropped > 0 {
		log.Infof("Dropped %d rows with missing or non-finite values", sum.Dropped)
	}
	return nil
}

func timeSeries(s *binplot.PlotSurface, file, tcol, ycol, tz string) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}
	tab, err := csvdata.ReadFile(file)
	if err != nil {
		return err
	}
	secs, err := tab.Float(tcol)
	if err != nil {
		return err
	}
	y, err := tab.Float(ycol)
	if err != nil {
		return err
	}
	s.SetAxisLabels("", ycol)
	return timeaxis.Render(s, timeaxis.FromUnix(secs), y, timeaxis.Options{Location: loc})
}
