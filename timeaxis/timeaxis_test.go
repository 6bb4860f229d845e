package timeaxis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	x, y     []float64
	layout   string
	loc      *time.Location
	rotation float64
	grid     bool
}

func (f *fakeSurface) DrawPath(x, y []float64) error {
	f.x, f.y = x, y
	return nil
}

func (f *fakeSurface) SetTimeAxis(layout string, loc *time.Location, rotation float64) {
	f.layout, f.loc, f.rotation = layout, loc, rotation
}

func (f *fakeSurface) EnableGrid(on bool) { f.grid = on }

func TestFromUnix(t *testing.T) {
	ts := FromUnix([]float64{0, 1.5, 1600000000.25})
	require.Len(t, ts, 3)
	assert.True(t, ts[0].Equal(time.Unix(0, 0)))
	assert.True(t, ts[1].Equal(time.Unix(1, 500000000)))
	assert.True(t, ts[2].Equal(time.Unix(1600000000, 250000000)))
	assert.Equal(t, time.UTC, ts[2].Location())
}

func TestLayouts(t *testing.T) {
	t0 := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	short := []time.Time{t0, t0.Add(3 * time.Hour)}
	long := []time.Time{t0, t0.Add(50 * time.Hour)}

	tests := []struct {
		ts          []time.Time
		opts        Options
		tick, hover string
	}{
		{short, Options{}, "15:04:05", "15:04:05.000000"},
		{long, Options{}, "2006-01-02 15:04:05", "2006-01-02 15:04:05.000000"},
		{short, Options{Date: DateAlways}, "2006-01-02 15:04:05", "2006-01-02 15:04:05.000000"},
		{long, Options{Date: DateNever}, "15:04:05", "15:04:05.000000"},
		{short, Options{NoTime: true}, "15:04", "15:04"},
		{long, Options{NoTime: true}, "2006-01-02", "2006-01-02"},
	}
	for i, tc := range tests {
		tick, hover := Layouts(tc.ts, tc.opts)
		assert.Equal(t, tc.tick, tick, "case %d", i)
		assert.Equal(t, tc.hover, hover, "case %d", i)
	}
}

func TestAutoLayout(t *testing.T) {
	day := 24 * time.Hour
	assert.Equal(t, "15:04:05", AutoLayout(10*time.Minute))
	assert.Equal(t, "15:04", AutoLayout(2*time.Hour))
	assert.Equal(t, "2006-01-02", AutoLayout(3*day))
	assert.Equal(t, "2006-01", AutoLayout(90*day))
	assert.Equal(t, "2006", AutoLayout(800*day))
}

func TestSpan(t *testing.T) {
	t0 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{t0.Add(time.Hour), t0, t0.Add(5 * time.Hour), t0.Add(2 * time.Hour)}
	assert.Equal(t, 5*time.Hour, Span(ts))
	assert.Equal(t, time.Duration(0), Span(nil))
}

func TestRender(t *testing.T) {
	zurich := time.FixedZone("CET", 3600)
	ts := FromUnix([]float64{1600000000, 1600000060, 1600000120})
	y := []float64{1, 4, 2}

	s := &fakeSurface{}
	require.NoError(t, Render(s, ts, y, Options{Location: zurich}))
	assert.InDeltaSlice(t, []float64{1600000000, 1600000060, 1600000120}, s.x, 1e-3)
	assert.Equal(t, y, s.y)
	assert.Equal(t, "15:04:05", s.layout)
	assert.Equal(t, zurich, s.loc)
	assert.Equal(t, float64(TickRotation), s.rotation)
	assert.True(t, s.grid)

	s = &fakeSurface{}
	require.NoError(t, Render(s, ts, y, Options{NoGrid: true}))
	assert.False(t, s.grid)
	require.NotNil(t, s.loc)
	assert.Equal(t, DefaultZone, s.loc.String())
}

func TestRenderErrors(t *testing.T) {
	s := &fakeSurface{}
	err := Render(s, FromUnix([]float64{1, 2}), []float64{1}, Options{})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	err = Render(s, nil, nil, Options{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, s.x)
}

func TestFromUnixMissing(t *testing.T) {
	ts := FromUnix([]float64{1600000000, math.NaN(), math.Inf(1), 1600007200})
	require.Len(t, ts, 4)
	assert.True(t, ts[1].IsZero())
	assert.True(t, ts[2].IsZero())
	assert.True(t, ts[3].Equal(time.Unix(1600007200, 0)))
}

func TestRenderSkipsMissing(t *testing.T) {
	ts := FromUnix([]float64{1600000000, math.NaN(), 1600003600, 1600007200})
	y := []float64{1, 2, math.NaN(), 3}

	s := &fakeSurface{}
	require.NoError(t, Render(s, ts, y, Options{Location: time.UTC}))
	assert.InDeltaSlice(t, []float64{1600000000, 1600007200}, s.x, 1e-3)
	assert.Equal(t, []float64{1, 3}, s.y)
	// The span of the kept samples picks the layout.
	assert.Equal(t, "15:04:05", s.layout)

	s = &fakeSurface{}
	err := Render(s, FromUnix([]float64{math.NaN(), 1}), []float64{1, math.Inf(-1)}, Options{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, s.x)
}
