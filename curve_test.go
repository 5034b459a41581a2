package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveTrace(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint(0, 10),
		NewPoint(10, 20),
		NewPoint(20, math.NaN()),
		NewPoint(30, 0),
		NewPoint(40, 5),
	}
	tests := []struct {
		Curve
		Want [][]Point
	}{
		{
			Curve: CurveLinear,
			Want: [][]Point{
				{NewPoint(0, 10), NewPoint(10, 20)},
				{NewPoint(30, 0), NewPoint(40, 5)},
			},
		},
		{
			Curve: CurveStep,
			Want: [][]Point{
				{NewPoint(0, 10), NewPoint(5, 10), NewPoint(5, 20), NewPoint(10, 20)},
				{NewPoint(30, 0), NewPoint(35, 0), NewPoint(35, 5), NewPoint(40, 5)},
			},
		},
		{
			Curve: CurveStepAfter,
			Want: [][]Point{
				{NewPoint(0, 10), NewPoint(10, 10), NewPoint(10, 20)},
				{NewPoint(30, 0), NewPoint(40, 0), NewPoint(40, 5)},
			},
		},
		{
			Curve: CurveStepBefore,
			Want: [][]Point{
				{NewPoint(0, 10), NewPoint(0, 20), NewPoint(10, 20)},
				{NewPoint(30, 0), NewPoint(30, 5), NewPoint(40, 5)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Curve.String(), func(t *testing.T) {
			assert.Equal(t, tt.Want, tt.Curve.Trace(points))
		})
	}
	assert.Empty(t, CurveStep.Trace(nil))
	assert.Equal(t, [][]Point{{NewPoint(1, 1)}}, CurveStep.Trace([]Point{NewPoint(1, 1)}))
}

func TestParseCurve(t *testing.T) {
	t.Parallel()
	for _, c := range []Curve{CurveLinear, CurveStep, CurveStepBefore, CurveStepAfter} {
		got, err := ParseCurve(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCurve("cubic")
	assert.Error(t, err)
}

func TestDrawStepSerie(t *testing.T) {
	t.Parallel()
	c := newTestChart(t)
	c.Curve = CurveStepAfter
	require.NoError(t, c.SetSeries([]Sample{
		NumberSample(0, 0),
		NumberSample(50, 5),
		NumberSample(100, 10),
	}))

	var rec recorder
	Draw(c, &rec)
	assert.Equal(t, 4, rec.count(StrokeSerie))
}
