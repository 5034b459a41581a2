package graph

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultMinSpacing    = 50.0
	DefaultMinSubSpacing = 4.0
	DefaultLabelPadding  = 8.0

	// Unbounded disables the maximum number of divisions of an axis.
	Unbounded = -1
)

// upper limit on the number of divisions computed from the pixel length.
// Protects the int conversion against absurd lengths.
const maxFittable = 1 << 16

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) Vertical() bool {
	return d == Vertical
}

func (d Direction) String() string {
	if d.Vertical() {
		return "vertical"
	}
	return "horizontal"
}

// sign of the pixel axis relative to the value axis. Pixels grow downward
// on screen while values of a vertical axis grow upward.
func (d Direction) sign() float64 {
	if d.Vertical() {
		return -1
	}
	return 1
}

type InvalidRangeError struct {
	Start Value
	End   Value
	Err   error
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%s, %s]: %s", e.Start, e.End, e.Err)
}

func (e *InvalidRangeError) Unwrap() error {
	return e.Err
}

// Axis maps a range of values onto a segment of pixels. Offset is the
// pixel position of the start value: the left end of a horizontal axis,
// the bottom end of a vertical one.
type Axis struct {
	Direction
	Length float64
	Offset float64

	MinSpacing    float64
	MaxDivisions  int
	Subdivisions  int
	MinSubSpacing float64
	LabelPadding  float64
	Format        Formatter

	start Value
	end   Value
}

func NewAxis(start, end Value, dir Direction) (*Axis, error) {
	a := Axis{
		MinSpacing:    DefaultMinSpacing,
		MaxDivisions:  Unbounded,
		Subdivisions:  1,
		MinSubSpacing: DefaultMinSubSpacing,
		LabelPadding:  DefaultLabelPadding,
	}
	if err := a.Configure(start, end, dir); err != nil {
		return nil, err
	}
	return &a, nil
}

// Configure replaces the range and the direction of the axis. The axis is
// left untouched when the range is rejected.
func (a *Axis) Configure(start, end Value, dir Direction) error {
	if err := checkRange(start, end); err != nil {
		return err
	}
	a.start = start
	a.end = end
	a.Direction = dir
	return nil
}

func checkRange(start, end Value) error {
	if !start.finite() || !end.finite() {
		return &InvalidRangeError{Start: start, End: end, Err: ErrEmptyRange}
	}
	c, err := Compare(start, end)
	if err != nil {
		return &InvalidRangeError{Start: start, End: end, Err: err}
	}
	if c >= 0 {
		return &InvalidRangeError{Start: start, End: end, Err: ErrEmptyRange}
	}
	return nil
}

func (a *Axis) Start() Value {
	return a.start
}

func (a *Axis) End() Value {
	return a.end
}

func (a *Axis) Kind() Kind {
	return a.start.Kind()
}

func (a *Axis) Resize(length, offset float64) {
	a.Length = sanitize(length)
	a.Offset = offset
}

// Layout computes the ticks of the axis for the given pixel length. It
// never fails: a zero or invalid length yields a single division without
// interior ticks.
func (a *Axis) Layout(length float64, m Measurer) LayoutResult {
	if m == nil {
		m = FontMetrics{}
	}
	length = sanitize(length)
	var (
		spacing = a.minSpacing(m)
		count   = a.divisionCount(length, spacing)
		step    = length / float64(count)
		subs    = a.subdivisionCount(step)
		sign    = a.sign()
	)
	res := LayoutResult{
		Direction:    a.Direction,
		Divisions:    count,
		Subdivisions: subs,
		Spacing:      step,
		Line: Segment{
			From: a.Offset,
			To:   a.Offset + sign*length,
		},
	}
	res.Start = a.tick(0, count, step)
	res.End = a.tick(count, count, step)
	if count > 1 {
		res.Major = make([]Tick, 0, count-1)
	}
	for n := 1; n < count; n++ {
		res.Major = append(res.Major, a.tick(n, count, step))
	}
	if subs <= 1 {
		return res
	}
	res.Minor = make([]float64, 0, count*(subs-1))
	for d := 0; d < count; d++ {
		for k := 1; k < subs; k++ {
			pos := (float64(d) + float64(k)/float64(subs)) * step
			res.Minor = append(res.Minor, a.Offset+sign*pos)
		}
	}
	return res
}

func (a *Axis) tick(n, count int, step float64) Tick {
	v := a.DivisionValue(n, count)
	return Tick{
		Offset: a.Offset + a.sign()*float64(n)*step,
		Value:  v,
		Label:  a.Format.Format(v),
	}
}

// minSpacing is the space needed to print the start and end labels
// without clipping, never less than the configured minimum.
func (a *Axis) minSpacing(m Measurer) float64 {
	var need float64
	if a.Vertical() {
		need = m.TextHeight()
	} else {
		var (
			fst = m.TextWidth(a.Format.Format(a.start))
			lst = m.TextWidth(a.Format.Format(a.end))
		)
		need = math.Max(fst, lst)
	}
	need += math.Max(a.LabelPadding, 0)
	return math.Max(sanitize(need), a.MinSpacing)
}

func (a *Axis) divisionCount(length, spacing float64) int {
	if spacing <= 0 {
		spacing = 1
	}
	fit := int(math.Min(math.Floor(length/spacing), maxFittable))
	if a.MaxDivisions >= 0 && a.MaxDivisions < fit {
		fit = a.MaxDivisions
	}
	if fit < 1 {
		fit = 1
	}
	return fit
}

func (a *Axis) subdivisionCount(step float64) int {
	n := a.Subdivisions
	if a.MinSubSpacing > 0 {
		fit := int(math.Min(math.Floor(step/a.MinSubSpacing), maxFittable))
		if fit < n {
			n = fit
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// DivisionValue returns the value at the n-th of count divisions.
func (a *Axis) DivisionValue(n, count int) Value {
	if count < 1 {
		count = 1
	}
	switch n {
	case 0:
		return a.start
	case count:
		return a.end
	default:
		return a.interpolate(float64(n) / float64(count))
	}
}

func (a *Axis) DivisionText(n, count int) string {
	return a.Format.Format(a.DivisionValue(n, count))
}

// PixelToValue converts a pixel position into the value it represents.
// Positions outside of the axis give extrapolated values.
func (a *Axis) PixelToValue(px float64) Value {
	if a.Length <= 0 {
		return a.start
	}
	return a.interpolate(a.fractionAt(px))
}

// ValueToPixel converts a value into a pixel position. It returns NaN for
// values that can not be placed on the axis.
func (a *Axis) ValueToPixel(v Value) float64 {
	return a.Offset + a.sign()*a.fraction(v)*a.Length
}

// Contains reports whether the pixel position lies between the start and
// the end of the axis.
func (a *Axis) Contains(px float64) bool {
	if a.Length <= 0 {
		return false
	}
	f := a.fractionAt(px)
	return f >= 0 && f <= 1
}

func (a *Axis) fractionAt(px float64) float64 {
	return a.sign() * (px - a.Offset) / a.Length
}

func (a *Axis) fraction(v Value) float64 {
	if !compatible(a.Kind(), v) {
		return math.NaN()
	}
	if a.Kind() == KindInstant {
		var (
			diff  = v.t.Sub(a.start.t)
			total = a.end.t.Sub(a.start.t)
		)
		if saturated(diff) || saturated(total) {
			return spanSeconds(a.start.t, v.t) / spanSeconds(a.start.t, a.end.t)
		}
		return float64(diff) / float64(total)
	}
	var (
		fst = a.start.Float()
		lst = a.end.Float()
	)
	return (v.Float() - fst) / (lst - fst)
}

func (a *Axis) interpolate(frac float64) Value {
	switch a.Kind() {
	case KindInteger:
		var (
			fst = float64(a.start.i)
			lst = float64(a.end.i)
			val = fst + frac*(lst-fst)
		)
		if val == math.Trunc(val) && math.Abs(val) < 1<<62 {
			return Integer(int64(val))
		}
		return Real(val)
	case KindReal:
		return Real(a.start.f + frac*(a.end.f-a.start.f))
	default:
		total := a.end.t.Sub(a.start.t)
		if diff := math.Round(frac * float64(total)); !saturated(total) && math.Abs(diff) < maxNanos {
			return Instant(a.start.t.Add(time.Duration(diff)))
		}
		switch frac {
		case 0:
			return a.start
		case 1:
			return a.end
		default:
			return Instant(addSeconds(a.start.t, frac*spanSeconds(a.start.t, a.end.t)))
		}
	}
}

// time.Duration only covers about 292 years. Instants further apart are
// handled in seconds.
const maxNanos = 1 << 62

func saturated(d time.Duration) bool {
	return d == math.MaxInt64 || d == math.MinInt64
}

func spanSeconds(from, to time.Time) float64 {
	return float64(to.Unix()-from.Unix()) + float64(to.Nanosecond()-from.Nanosecond())/1e9
}

func addSeconds(t time.Time, secs float64) time.Time {
	var (
		whole = math.Floor(secs)
		nsec  = math.Round((secs - whole) * 1e9)
	)
	return time.Unix(t.Unix()+int64(whole), int64(t.Nanosecond())+int64(nsec)).In(t.Location())
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
