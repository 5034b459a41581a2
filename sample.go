package graph

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnordered = errors.New("timestamps not in chronological order")
	ErrNoSamples = errors.New("no samples")
)

type Sample struct {
	X Value
	Y Value
}

func TimeSample(t time.Time, y float64) Sample {
	return Sample{
		X: Instant(t),
		Y: Real(y),
	}
}

func NumberSample(x, y float64) Sample {
	return Sample{
		X: Real(x),
		Y: Real(y),
	}
}

// CheckSeries verifies that samples can be plotted on axes of kinds x and
// y. Samples on a time axis must be sorted by time.
func CheckSeries(samples []Sample, x, y Kind) error {
	for i, s := range samples {
		if !compatible(x, s.X) || !compatible(y, s.Y) {
			return fmt.Errorf("sample %d: %w", i, ErrKindMismatch)
		}
		if x != KindInstant || i == 0 {
			continue
		}
		if s.X.Time().Before(samples[i-1].X.Time()) {
			return fmt.Errorf("sample %d: %w", i, ErrUnordered)
		}
	}
	return nil
}

// Extent returns the smallest and largest x and y values of samples.
// Bounds mixing integers and reals are both returned as reals.
func Extent(samples []Sample) (x0, x1, y0, y1 Value, err error) {
	if len(samples) == 0 {
		err = ErrNoSamples
		return
	}
	x0, x1 = samples[0].X, samples[0].X
	y0, y1 = samples[0].Y, samples[0].Y
	for _, s := range samples[1:] {
		if x0, x1, err = extend(x0, x1, s.X); err != nil {
			return
		}
		if y0, y1, err = extend(y0, y1, s.Y); err != nil {
			return
		}
	}
	x0, x1 = promote(x0, x1)
	y0, y1 = promote(y0, y1)
	return
}

func extend(lo, hi, v Value) (Value, Value, error) {
	c, err := order(v, lo)
	if err != nil {
		return lo, hi, err
	}
	if c < 0 {
		lo = v
	}
	if c, _ = order(v, hi); c > 0 {
		hi = v
	}
	return lo, hi, nil
}

func order(a, b Value) (int, error) {
	if a.Kind() != b.Kind() && a.Kind().Numeric() && b.Kind().Numeric() {
		return cmp.Compare(a.Float(), b.Float()), nil
	}
	return Compare(a, b)
}

func promote(lo, hi Value) (Value, Value) {
	if lo.Kind() == hi.Kind() {
		return lo, hi
	}
	return Real(lo.Float()), Real(hi.Float())
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
