package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()
	now := time.Now()
	tests := []struct {
		A    Value
		B    Value
		Want int
	}{
		{A: Integer(1), B: Integer(2), Want: -1},
		{A: Integer(2), B: Integer(2), Want: 0},
		{A: Real(2.5), B: Real(-1), Want: 1},
		{A: Instant(now), B: Instant(now.Add(time.Second)), Want: -1},
		{A: Instant(now), B: Instant(now), Want: 0},
	}
	for _, tt := range tests {
		got, err := Compare(tt.A, tt.B)
		require.NoError(t, err)
		assert.Equal(t, tt.Want, got)
	}
	_, err := Compare(Integer(1), Real(1))
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()
	when := time.Unix(10, 0)
	assert.Equal(t, KindInstant, Instant(when).Kind())
	assert.Equal(t, when, Instant(when).Time())
	assert.Equal(t, float64(10*time.Second), Instant(when).Float())
	assert.True(t, Real(1).Time().IsZero())
	assert.Equal(t, int64(3), Real(3.9).Int())
	assert.Equal(t, 7.0, Integer(7).Float())
	assert.True(t, KindReal.Numeric())
	assert.False(t, KindInstant.Numeric())
	assert.Equal(t, "1.5", Real(1.5).String())
}

func TestCheckSeries(t *testing.T) {
	t.Parallel()
	base := time.Date(2017, 8, 1, 0, 0, 0, 0, time.UTC)
	samples := []Sample{
		TimeSample(base, 1),
		TimeSample(base, 2),
		TimeSample(base.Add(time.Hour), 3),
	}
	assert.NoError(t, CheckSeries(samples, KindInstant, KindReal))
	assert.NoError(t, CheckSeries(samples, KindInstant, KindInteger))
	assert.ErrorIs(t, CheckSeries(samples, KindReal, KindReal), ErrKindMismatch)

	samples = append(samples, TimeSample(base.Add(time.Minute), 4))
	assert.ErrorIs(t, CheckSeries(samples, KindInstant, KindReal), ErrUnordered)

	numbers := []Sample{NumberSample(3, 1), NumberSample(1, 2)}
	assert.NoError(t, CheckSeries(numbers, KindReal, KindReal))
}

func TestExtent(t *testing.T) {
	t.Parallel()
	_, _, _, _, err := Extent(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	x0, x1, y0, y1, err := Extent([]Sample{
		NumberSample(3, 10),
		NumberSample(-1, 12),
		NumberSample(8, -4),
	})
	require.NoError(t, err)
	assert.Equal(t, Real(-1), x0)
	assert.Equal(t, Real(8), x1)
	assert.Equal(t, Real(-4), y0)
	assert.Equal(t, Real(12), y1)

	_, _, _, _, err = Extent([]Sample{NumberSample(1, 1), TimeSample(time.Unix(0, 0), 1)})
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestExtentMixedNumbers(t *testing.T) {
	t.Parallel()
	samples := []Sample{
		{X: Integer(4), Y: Real(2.5)},
		{X: Real(1.5), Y: Integer(7)},
		{X: Integer(9), Y: Integer(-1)},
	}
	require.NoError(t, CheckSeries(samples, KindReal, KindReal))

	x0, x1, y0, y1, err := Extent(samples)
	require.NoError(t, err)
	assert.Equal(t, Real(1.5), x0)
	assert.Equal(t, Real(9), x1)
	assert.Equal(t, Real(-1), y0)
	assert.Equal(t, Real(7), y1)

	x0, x1, _, _, err = Extent([]Sample{{X: Integer(2), Y: Real(0)}, {X: Integer(5), Y: Real(1)}})
	require.NoError(t, err)
	assert.Equal(t, Integer(2), x0)
	assert.Equal(t, Integer(5), x1)

	c := NewChart(DefaultSettings(), nil)
	require.NoError(t, c.SetDomain(Real(1.5), Real(9), Real(-1), Real(7)))
	assert.NoError(t, c.SetSeries(samples))
}
