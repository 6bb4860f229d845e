package binplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	s := NewScale()
	assert.Equal(t, Range{Min: 0, Max: 1}, s.Range())

	s.Train(2, math.NaN(), 12, math.Inf(-1))
	assert.Equal(t, 2.0, s.DomainMin)
	assert.Equal(t, 12.0, s.DomainMax)
	r := s.Range()
	assert.InDelta(t, 1.5, r.Min, 1e-12)
	assert.InDelta(t, 12.5, r.Max, 1e-12)
	assert.InDelta(t, 11.0, r.Span(), 1e-12)

	// A single value gets a unit margin before expansion.
	s = NewScale()
	s.Train(5)
	r = s.Range()
	assert.InDelta(t, 3.9, r.Min, 1e-12)
	assert.InDelta(t, 6.1, r.Max, 1e-12)

	s.Fix(Range{Min: -1, Max: 1})
	s.Train(100)
	assert.Equal(t, Range{Min: -1, Max: 1}, s.Range())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.DrawPointsWithErrorBars([]float64{1, 3}, []float64{10, 20}, []float64{0.5, 1}, []float64{2, 2}))
	xr, yr := r.AxisRange()
	// Domains [0.5,4] and [8,22] expanded by 5%.
	assert.InDelta(t, 0.325, xr.Min, 1e-12)
	assert.InDelta(t, 4.175, xr.Max, 1e-12)
	assert.InDelta(t, 7.3, yr.Min, 1e-12)
	assert.InDelta(t, 22.7, yr.Max, 1e-12)

	// Drawing grows the ranges until they are pinned.
	require.NoError(t, r.DrawLine(0, 0, 10, 40))
	_, grown := r.AxisRange()
	assert.Greater(t, grown.Max, yr.Max)
	r.SetAxisRange(xr, yr)
	require.NoError(t, r.DrawLine(-50, -50, 50, 50))
	x2, y2 := r.AxisRange()
	assert.Equal(t, xr, x2)
	assert.Equal(t, yr, y2)

	r.SetAxisLabels("x", "")
	r.SetAxisLabels("", "y")
	assert.Equal(t, "x", r.XLabel)
	assert.Equal(t, "y", r.YLabel)

	require.Len(t, r.Grobs, 3)
	assert.Equal(t, "Points(2)", r.Grobs[0].String())
	assert.Equal(t, "Line(0,0 -- 10,40)", r.Grobs[1].String())

	err := r.DrawPointsWithErrorBars([]float64{1}, []float64{1, 2}, nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Len(t, r.Grobs, 3)
}
