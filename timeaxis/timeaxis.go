// Package timeaxis plots values against UTC timestamps shown in a local
// timezone.
package timeaxis

import (
	"errors"
	"fmt"
	"math"
	"time"
	_ "time/tzdata"

	"github.com/vdobler/binplot/stat"
)

var (
	ErrShapeMismatch = stat.ErrShapeMismatch
	ErrNoData        = errors.New("timeaxis: no samples with a timestamp and a finite value")
)

// DefaultZone is the timezone used if Options.Location is nil.
const DefaultZone = "America/New_York"

// TickRotation is the rotation of the tick labels in degrees.
const TickRotation = 30

// DateMode controls whether the date is part of the tick labels.
type DateMode int

const (
	DateAuto   DateMode = iota // include the date if the data spans more than a day
	DateAlways                 // always include the date
	DateNever                  // never include the date
)

// Options for Render.
type Options struct {
	// Location is the timezone of the tick labels; nil means DefaultZone.
	Location *time.Location

	Date DateMode

	// NoTime drops the fixed time-of-day layout in favour of a layout
	// chosen by the span of the data.
	NoTime bool

	NoGrid bool
}

// Surface is what Render draws onto. binplot.PlotSurface implements it.
type Surface interface {
	// DrawPath draws a polyline; x are Unix seconds.
	DrawPath(x, y []float64) error

	// SetTimeAxis formats the x tick labels with the time layout in loc
	// rotated by rotation degrees.
	SetTimeAxis(layout string, loc *time.Location, rotation float64)

	EnableGrid(on bool)
}

// FromUnix converts Unix seconds to times. NaN and infinite seconds
// become the zero time, which Render treats as missing.
func FromUnix(secs []float64) []time.Time {
	ts := make([]time.Time, len(secs))
	for i, s := range secs {
		if !finite(s) {
			continue
		}
		whole := math.Floor(s)
		ts[i] = time.Unix(int64(whole), int64(math.Round((s-whole)*1e9))).UTC()
	}
	return ts
}

// Span returns the time between the earliest and the latest timestamp.
func Span(ts []time.Time) time.Duration {
	if len(ts) == 0 {
		return 0
	}
	min, max := ts[0], ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return max.Sub(min)
}

// Layouts returns the layout of the tick labels and a more precise layout
// for callers that print a single point in time themselves, e.g. in a
// readout next to the plot. Render only uses the tick layout.
func Layouts(ts []time.Time, opts Options) (tick, hover string) {
	span := Span(ts)
	if opts.NoTime {
		tick = AutoLayout(span)
		return tick, tick
	}

	tick = "15:04:05"
	date := opts.Date == DateAlways || (opts.Date == DateAuto && span > 24*time.Hour)
	if date {
		tick = "2006-01-02 " + tick
	}
	return tick, tick + ".000000"
}

// AutoLayout picks a tick label layout suitable for data spanning span.
func AutoLayout(span time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case span > 365*day:
		return "2006"
	case span > 30*day:
		return "2006-01"
	case span > day:
		return "2006-01-02"
	case span > time.Hour:
		return "15:04"
	}
	return "15:04:05"
}

// Location resolves the timezone to use for opts.
func Location(opts Options) (*time.Location, error) {
	if opts.Location != nil {
		return opts.Location, nil
	}
	loc, err := time.LoadLocation(DefaultZone)
	if err != nil {
		return nil, fmt.Errorf("timeaxis: %w", err)
	}
	return loc, nil
}

// Sanitize drops the samples with a zero (missing) timestamp or a
// non-finite value. The returned slices are freshly allocated.
func Sanitize(ts []time.Time, y []float64) ([]time.Time, []float64, error) {
	if len(ts) != len(y) {
		return nil, nil, fmt.Errorf("timeaxis: %d timestamps, %d values: %w", len(ts), len(y), ErrShapeMismatch)
	}
	tc := make([]time.Time, 0, len(ts))
	yc := make([]float64, 0, len(y))
	for i, t := range ts {
		if t.IsZero() || !finite(y[i]) {
			continue
		}
		tc = append(tc, t)
		yc = append(yc, y[i])
	}
	if len(tc) == 0 {
		return nil, nil, ErrNoData
	}
	return tc, yc, nil
}

// Render draws y against the timestamps ts and formats the x axis as
// times in the requested timezone. Samples with a missing timestamp or a
// non-finite value are skipped.
func Render(s Surface, ts []time.Time, y []float64, opts Options) error {
	ts, y, err := Sanitize(ts, y)
	if err != nil {
		return err
	}
	loc, err := Location(opts)
	if err != nil {
		return err
	}

	x := make([]float64, len(ts))
	for i, t := range ts {
		x[i] = float64(t.UnixNano()) / 1e9
	}
	if err := s.DrawPath(x, y); err != nil {
		return err
	}
	if !opts.NoGrid {
		s.EnableGrid(true)
	}
	tick, _ := Layouts(ts, opts)
	s.SetTimeAxis(tick, loc, TickRotation)
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
