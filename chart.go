package graph

import (
	"fmt"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Bounds is the room kept between the content margins and the plot area
// for the labels of the axes: X on the left of the plot, Y below it.
type Bounds struct {
	X float64
	Y float64
}

type AxisSettings struct {
	MinSpacing    float64
	MaxDivisions  int
	Subdivisions  int
	MinSubSpacing float64
	LabelPadding  float64
	Format        Formatter
}

func (s AxisSettings) apply(a *Axis) {
	a.MinSpacing = s.MinSpacing
	a.MaxDivisions = s.MaxDivisions
	a.Subdivisions = s.Subdivisions
	a.MinSubSpacing = s.MinSubSpacing
	a.LabelPadding = s.LabelPadding
	a.Format = s.Format
}

type Settings struct {
	Padding
	Gutter Bounds
	X      AxisSettings
	Y      AxisSettings
	Curve  Curve
}

func DefaultSettings() Settings {
	axis := AxisSettings{
		MinSpacing:    DefaultMinSpacing,
		MaxDivisions:  10,
		Subdivisions:  5,
		MinSubSpacing: DefaultMinSubSpacing,
		LabelPadding:  DefaultLabelPadding,
	}
	return Settings{
		Padding: Padding{
			Top:    12,
			Right:  12,
			Bottom: 12,
			Left:   12,
		},
		Gutter: Bounds{
			X: 20,
			Y: 20,
		},
		X: axis,
		Y: axis,
	}
}

// Cursor is the pointer position over the plot area and the values it
// designates on both axes.
type Cursor struct {
	X      float64
	Y      float64
	XValue Value
	YValue Value
}

// Chart owns a horizontal domain axis, a vertical value axis and the serie
// plotted against them. It is not safe for concurrent use.
type Chart struct {
	Settings
	Width  float64
	Height float64

	x      *Axis
	y      *Axis
	xl     LayoutResult
	yl     LayoutResult
	series []Sample
	cursor *Cursor

	measure Measurer
}

func NewChart(settings Settings, m Measurer) *Chart {
	if m == nil {
		m = FontMetrics{}
	}
	return &Chart{
		Settings: settings,
		measure:  m,
	}
}

// SetDomain recreates both axes for the given ranges. The current geometry
// is applied to the new axes and the cursor is hidden.
func (c *Chart) SetDomain(x0, x1, y0, y1 Value) error {
	x, err := NewAxis(x0, x1, Horizontal)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	y, err := NewAxis(y0, y1, Vertical)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	c.X.apply(x)
	c.Y.apply(y)
	c.x, c.y = x, y
	if CheckSeries(c.series, x.Kind(), y.Kind()) != nil {
		c.series = nil
	}
	c.cursor = nil
	c.relayout()
	return nil
}

func (c *Chart) SetSeries(samples []Sample) error {
	if c.x == nil || c.y == nil {
		return fmt.Errorf("series can not be set before domain")
	}
	if err := CheckSeries(samples, c.x.Kind(), c.y.Kind()); err != nil {
		return err
	}
	c.series = append(c.series[:0:0], samples...)
	return nil
}

func (c *Chart) Series() []Sample {
	return c.series
}

func (c *Chart) XAxis() *Axis {
	return c.x
}

func (c *Chart) YAxis() *Axis {
	return c.y
}

// Resize updates the geometry of the chart and of its axes. The cursor is
// hidden since its position may fall outside of the new plot area.
func (c *Chart) Resize(width, height float64) {
	c.Width = sanitize(width)
	c.Height = sanitize(height)
	c.cursor = nil
	c.relayout()
}

func (c *Chart) relayout() {
	var (
		orig = c.Origin()
		plot = c.Plot()
	)
	if c.x != nil {
		c.x.Resize(plot.Width(), orig.X)
		c.xl = c.x.Layout(c.x.Length, c.measure)
	}
	if c.y != nil {
		c.y.Resize(plot.Height(), orig.Y)
		c.yl = c.y.Layout(c.y.Length, c.measure)
	}
}

// Origin is the pixel position where both axes start.
func (c *Chart) Origin() Point {
	return Point{
		X: c.Padding.Left + c.Gutter.X,
		Y: c.Height - (c.Padding.Bottom + c.Gutter.Y),
	}
}

// Plot returns the area delimited by the axes. A chart too small to hold
// its margins yields an empty area anchored at the origin.
func (c *Chart) Plot() Rect {
	var (
		orig = c.Origin()
		rect = Rect{
			Min: Point{X: orig.X, Y: c.Padding.Top},
			Max: Point{X: c.Width - c.Padding.Right, Y: orig.Y},
		}
	)
	if rect.Max.X < rect.Min.X {
		rect.Max.X = rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y = rect.Max.Y
	}
	return rect
}

func (c *Chart) Layouts() (LayoutResult, LayoutResult) {
	return c.xl, c.yl
}

// PointerMoved updates the cursor from a pointer position. It reports
// whether the cursor is visible afterwards.
func (c *Chart) PointerMoved(x, y float64) bool {
	if c.x == nil || c.y == nil || !c.x.Contains(x) || !c.y.Contains(y) {
		c.cursor = nil
		return false
	}
	c.cursor = &Cursor{
		X:      x,
		Y:      y,
		XValue: c.x.PixelToValue(x),
		YValue: c.y.PixelToValue(y),
	}
	return true
}

func (c *Chart) PointerLeft() {
	c.cursor = nil
}

func (c *Chart) Cursor() (Cursor, bool) {
	if c.cursor == nil {
		return Cursor{}, false
	}
	return *c.cursor, true
}

// Readout returns the labels of the values under the cursor.
func (c *Chart) Readout() (string, string, bool) {
	cur, ok := c.Cursor()
	if !ok {
		return "", "", false
	}
	return c.x.Format.Format(cur.XValue), c.y.Format.Format(cur.YValue), true
}

// Points returns the pixel positions of the samples of the serie.
func (c *Chart) Points() []Point {
	if c.x == nil || c.y == nil {
		return nil
	}
	all := make([]Point, 0, len(c.series))
	for _, s := range c.series {
		all = append(all, Point{
			X: c.x.ValueToPixel(s.X),
			Y: c.y.ValueToPixel(s.Y),
		})
	}
	return all
}
